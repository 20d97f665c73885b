// SPDX-License-Identifier: EPL-2.0

// Package monowav encodes float audio samples as mono 16-bit PCM WAV
// buffers.
//
// The package turns a finite []float32 of samples in [-1.0, 1.0] into a
// complete, byte-exact RIFF/WAVE file image: a fixed 44-byte header
// followed by little-endian int16 sample data. It performs no file or
// network I/O of its own; callers receive a plain byte slice and decide
// where it goes.
//
// # Quick Start
//
// Encode is the whole API for most callers:
//
//	samples := []float32{0, 0.25, 0.5, 0.25, 0, -0.25, -0.5, -0.25}
//	wav := monowav.Encode(samples, monowav.DefaultSampleRate)
//
//	// wav is a playable .wav image, 44 + 2*len(samples) bytes
//	os.WriteFile("tone.wav", wav, 0o644)
//
// Out-of-range samples are clamped, NaN encodes as silence, and an
// empty slice produces a valid header-only file. The buffer's content
// type is monowav.MIMEType when serving it over HTTP.
//
// # Streaming the Bytes Out
//
// EncodeTo produces the identical bytes directly on an io.Writer,
// quantizing through a fixed-size chunk buffer rather than holding the
// whole data section in memory:
//
//	f, _ := os.Create("tone.wav")
//	err := monowav.EncodeTo(f, samples, 44100)
//
// # Encoding Decoded Audio
//
// EncodeBuffer accepts the go-audio interchange buffer produced by the
// go-audio decoder family, normalizing by bit depth and downmixing to
// mono on the way in:
//
//	dec := wav.NewDecoder(f) // or aiff, or any go-audio decoder
//	pcmBuf, _ := dec.FullPCMBuffer()
//	out, err := monowav.EncodeBuffer(pcmBuf)
//
// The formats subpackages read compressed sources into plain sample
// slices for the same purpose:
//
//	samples, rate, err := mp3.Samples(f)    // formats/mp3
//	samples, rate, err := vorbis.Samples(f) // formats/vorbis
//	samples, rate, err := aiff.Samples(f)   // formats/aiff
//	wav := monowav.Encode(samples, rate)
//
// A Registry maps format keys to such readers so programs can dispatch
// on file extension; see examples/towav.
//
// # Layout Guarantees
//
// The encoded buffer is always:
//   - 44 + 2*N bytes for N input samples
//   - mono, 16-bit, uncompressed PCM
//   - little-endian in every numeric header field and every sample
//
// Quantization clamps to [-1.0, 1.0] and scales negative values by
// 32768 and non-negative by 32767, so -1.0 and 1.0 hit the exact int16
// extremes. The riff and pcm subpackages expose the two halves of this
// contract separately for callers assembling buffers themselves.
//
// # Concurrency
//
// Encoding keeps no package state. Every call allocates its own output
// buffer and never writes to the input slice, so any number of
// goroutines may encode at once.
package monowav
