package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/monowav/monowav/pcm"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Samples decodes an entire AIFF stream into mono float32 samples in
// [-1, 1], returning the samples and the stream's sample rate.
// Multi-channel streams are averaged down to mono. 8, 16, 24 and
// 32-bit PCM data is normalized by its full-scale value.
func Samples(r io.Reader) ([]float32, int, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	dec.ReadInfo()

	return samplesFrom(dec, int(dec.BitDepth))
}

func samplesFrom(dec aiffReader, bitDepth int) ([]float32, int, error) {
	format := dec.Format()
	if format == nil {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 8192),
		Format: format,
	}

	var data []int
	for {
		n, err := dec.PCMBuffer(intBuf)

		if n > 0 {
			data = append(data, intBuf.Data[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}

		// The decoder signals the end of data with a short read
		if n < len(intBuf.Data) {
			break
		}
	}

	samples := pcm.Floats(data, bitDepth)

	return pcm.Downmix(samples, format.NumChannels), format.SampleRate, nil
}
