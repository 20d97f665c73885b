package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/monowav/monowav/pcm"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Samples decodes an entire Ogg Vorbis stream into mono float32
// samples in [-1, 1], returning the samples and the stream's sample
// rate. Multi-channel streams are averaged down to mono.
func Samples(r io.Reader) ([]float32, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return samplesFrom(dec)
}

func samplesFrom(dec oggReader) ([]float32, int, error) {
	// Read reports the number of float32 values written, always a
	// whole number of frames
	buf := make([]float32, 8192)
	interleaved := make([]float32, 0, 8192)

	for {
		n, err := dec.Read(buf)

		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return pcm.Downmix(interleaved, dec.Channels()), dec.SampleRate(), nil
}
