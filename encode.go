package monowav

import (
	"fmt"
	"io"

	"github.com/monowav/monowav/pcm"
	"github.com/monowav/monowav/riff"
)

// DefaultSampleRate is the sample rate callers should pass when they
// have no rate of their own: CD-quality 44.1 kHz.
const DefaultSampleRate = 44100

// MIMEType is the content type of an encoded buffer, for callers that
// serve it over HTTP or attach it to a payload.
const MIMEType = "audio/wav"

// Encode packages samples into a complete mono 16-bit PCM WAV file and
// returns it as a freshly allocated byte buffer of exactly
// 44 + len(samples)*2 bytes.
//
// Each sample is clamped to [-1, 1] and quantized to a little-endian
// int16; NaN samples encode as silence. The function never fails:
// an empty or nil slice yields the 44-byte header-only file, and
// sampleRate is written into the header as-is without validation
// (callers wanting a playable file must pass a positive rate, typically
// DefaultSampleRate).
//
// Encode is deterministic and keeps no state; identical inputs produce
// byte-identical buffers, samples is never modified, and the returned
// buffer is not retained, so concurrent calls are safe.
//
// Example:
//
//	samples := []float32{0, 0.5, -0.5}
//	wav := monowav.Encode(samples, monowav.DefaultSampleRate)
//	// wav is a complete .wav file image; write it out, serve it with
//	// Content-Type monowav.MIMEType, or hand it to a player
func Encode(samples []float32, sampleRate int) []byte {
	buf := make([]byte, riff.Size(len(samples)))

	riff.PutHeader(buf, len(samples), sampleRate)
	pcm.PutSamples(buf[riff.HeaderSize:], samples)

	return buf
}

// EncodeTo writes the same bytes Encode returns to w without
// materializing the data section in memory: the 44-byte header first,
// then samples quantized through a fixed-size chunk buffer. The first
// write error aborts the encode and is returned wrapped.
func EncodeTo(w io.Writer, samples []float32, sampleRate int) error {
	header := make([]byte, riff.HeaderSize)
	riff.PutHeader(header, len(samples), sampleRate)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Quantize and write in chunks to bound the buffer for large inputs
	const chunkSize = 8192 // samples per write

	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*pcm.SampleBytes)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		n := pcm.PutSamples(buf[:len(chunk)*pcm.SampleBytes], chunk)

		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
