// SPDX-License-Identifier: EPL-2.0

// Package pcm converts float audio samples to signed 16-bit PCM.
//
// This package implements the sample-level half of WAV encoding:
// quantizing float32 samples to int16 and serializing them as
// little-endian bytes. It also provides the inverse normalization and
// a channel downmix used when preparing samples from decoded sources.
//
// # Quantization
//
// Quantize maps one float sample in [-1.0, 1.0] to int16:
//
//	pcm.Quantize(0)  // 0
//	pcm.Quantize(1)  // 32767
//	pcm.Quantize(-1) // -32768
//
// Values outside [-1.0, 1.0] clamp to the nearest bound and NaN maps
// to 0. Negative values scale by 32768 and non-negative by 32767, so
// both extremes are exactly representable without overflow.
//
// # Serializing Samples
//
// PutSamples writes whole slices in one pass:
//
//	buf := make([]byte, len(samples)*pcm.SampleBytes)
//	n := pcm.PutSamples(buf, samples)
//
// Sample i lands at buf[2i:2i+2] in little-endian byte order.
//
// # Preparing Input
//
// Downmix averages interleaved multi-channel frames to mono, and
// Floats normalizes integer PCM read from decoders back to [-1.0, 1.0]
// by its source bit depth:
//
//	mono := pcm.Downmix(stereo, 2)
//	samples := pcm.Floats(intBuf.Data, 16)
//
// Both exist for the input side of an encode pipeline; the encoded
// data chunk itself is always mono 16-bit.
package pcm
