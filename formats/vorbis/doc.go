// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis audio for WAV encoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams. Vorbis is a free, open-source lossy audio compression format.
//
// # Reading Vorbis Data
//
// Samples decodes a whole stream in one call:
//
//	file, _ := os.Open("audio.ogg")
//	samples, rate, err := vorbis.Samples(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := monowav.Encode(samples, rate)
//
// The returned samples are mono float32 values in the range
// [-1.0, 1.0], ready for encoding. Multi-channel streams are averaged
// down to a single channel.
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 1 (downmixed)
//   - Sample rate: taken from the stream (commonly 44.1kHz or 48kHz)
//
// # Memory
//
// Samples reads the entire stream before returning, so memory use is
// proportional to the decoded length. Vorbis streams of any bitrate
// and channel count decode transparently.
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - The whole stream is decoded up front
package vorbis
