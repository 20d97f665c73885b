// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MP3 streams into sample slices for WAV encoding.
//
// This package uses github.com/hajimehoshi/go-mp3 for decoding. The
// decoder always produces 16-bit stereo PCM; Samples converts it to
// mono float32 in [-1.0, 1.0] by averaging the two channels.
//
// # Reading MP3 Data
//
//	file, _ := os.Open("audio.mp3")
//	samples, rate, err := mp3.Samples(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	wav := monowav.Encode(samples, rate)
//
// The whole stream is decoded up front, so memory use is proportional
// to the decoded length. Sources that cannot be held in memory are out
// of scope here.
//
// # Errors
//
// Construction and read failures from go-mp3 are returned wrapped;
// there are no package-level sentinel errors to compare against.
package mp3
