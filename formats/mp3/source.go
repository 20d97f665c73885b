// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/monowav/monowav/pcm"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always emits two interleaved channels
const channels = 2

// Samples decodes an entire MP3 stream into mono float32 samples in
// [-1, 1], returning the samples and the stream's sample rate. Stereo
// output from the decoder is averaged down to mono.
func Samples(r io.Reader) ([]float32, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return samplesFrom(dec)
}

func samplesFrom(dec mp3Reader) ([]float32, int, error) {
	// go-mp3 returns 16-bit little-endian PCM bytes, stereo interleaved
	buf := make([]byte, 8192)
	interleaved := make([]float32, 0, 8192)

	for {
		n, err := dec.Read(buf)

		samples := n / 2
		for i := range samples {
			low := uint16(buf[2*i])
			high := uint16(buf[2*i+1])
			val := int16(low | (high << 8))
			interleaved = append(interleaved, float32(val)/32768.0)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return pcm.Downmix(interleaved, channels), dec.SampleRate(), nil
}
