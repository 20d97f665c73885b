// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
)

// PutSamples quantizes samples and writes them into dst as little-endian
// 16-bit PCM, sample i at dst[2i:2i+2]. It returns the number of bytes
// written, always len(samples)*SampleBytes.
//
// Like binary.LittleEndian.PutUint16, it panics if dst is too short.
func PutSamples(dst []byte, samples []float32) int {
	for i, s := range samples {
		binary.LittleEndian.PutUint16(dst[i*SampleBytes:i*SampleBytes+SampleBytes], uint16(Quantize(s)))
	}

	return len(samples) * SampleBytes
}
