// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
)

// HeaderSize is the length in bytes of a canonical WAV header: RIFF
// chunk descriptor (12), PCM fmt chunk (24) and data chunk header (8).
const HeaderSize = 44

// Chunk identifiers, stored as ASCII at fixed offsets.
const (
	tagRIFF = "RIFF"
	tagWAVE = "WAVE"
	tagFmt  = "fmt "
	tagData = "data"
)

// Fixed fmt chunk values for mono 16-bit PCM.
const (
	fmtChunkSize  = 16 // PCM fmt chunk size
	formatPCM     = 1  // linear quantization, no compression
	monoChannels  = 1
	bitsPerSample = 16
	sampleBytes   = bitsPerSample / 8
	blockAlign    = monoChannels * sampleBytes
)

// Size returns the total length in bytes of a WAV buffer holding
// sampleCount mono 16-bit samples: HeaderSize plus two bytes per
// sample. Negative counts size like zero.
func Size(sampleCount int) int {
	if sampleCount < 0 {
		sampleCount = 0
	}

	return HeaderSize + sampleCount*sampleBytes
}

// PutHeader writes the 44-byte mono 16-bit PCM WAV header into
// buf[:HeaderSize] for a data chunk of sampleCount samples at
// sampleRate.
//
// A negative sampleCount is treated as zero, describing a header-only
// file with an empty data chunk. sampleRate is written as-is after
// uint32 conversion; callers wanting a playable file must pass a
// positive rate. Panics if len(buf) < HeaderSize.
func PutHeader(buf []byte, sampleCount, sampleRate int) {
	if sampleCount < 0 {
		sampleCount = 0
	}

	dataSize := uint32(sampleCount * sampleBytes)
	riffSize := 36 + dataSize
	byteRate := uint32(sampleRate) * monoChannels * sampleBytes

	_ = buf[HeaderSize-1] // bounds check up front

	// RIFF chunk descriptor (12 bytes)
	copy(buf[0:4], tagRIFF)
	binary.LittleEndian.PutUint32(buf[4:8], riffSize)
	copy(buf[8:12], tagWAVE)

	// fmt chunk (24 bytes)
	copy(buf[12:16], tagFmt)
	binary.LittleEndian.PutUint32(buf[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(buf[20:22], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:24], monoChannels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(buf[36:40], tagData)
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
}
