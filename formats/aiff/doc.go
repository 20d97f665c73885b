// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF (Audio Interchange File Format) audio for
// WAV encoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF streams.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Reading AIFF Data
//
// Samples decodes a whole stream in one call:
//
//	file, _ := os.Open("audio.aif")
//	samples, rate, err := aiff.Samples(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := monowav.Encode(samples, rate)
//
// The returned samples are mono float32 values in the range
// [-1.0, 1.0]. Multi-channel streams are averaged down to a single
// channel, and 8, 16, 24 and 32-bit PCM data is normalized by its
// full-scale value.
//
// # Error Handling
//
// The package defines sentinel errors:
//   - ErrNotAiffFile: The input is not a valid AIFF stream
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// Example:
//
//	samples, rate, err := aiff.Samples(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Originated on Apple platforms (WAV on Windows)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// The decoder handles all format differences automatically.
//
// # Memory
//
// Samples reads the entire stream before returning, so memory use is
// proportional to the decoded length. Readers that do not implement
// io.Seeker are buffered in memory first.
//
// # File Extensions
//
// AIFF files typically use:
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C (compressed, not supported)
package aiff
