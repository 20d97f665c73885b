// SPDX-License-Identifier: EPL-2.0

package monowav

import (
	goaudio "github.com/go-audio/audio"

	"github.com/monowav/monowav/pcm"
)

// EncodeBuffer encodes a go-audio PCM buffer, the interchange type of
// the go-audio decoder family, as a mono 16-bit WAV file.
//
// Samples are normalized to [-1, 1] by buf.SourceBitDepth (treated as
// 16-bit when unset) and multi-channel data is averaged down to mono
// before encoding at buf.Format.SampleRate. Returns ErrNilBuffer for a
// nil buffer and ErrNoFormat when buf.Format is nil.
func EncodeBuffer(buf *goaudio.IntBuffer) ([]byte, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	if buf.Format == nil {
		return nil, ErrNoFormat
	}

	samples := pcm.Floats(buf.Data, buf.SourceBitDepth)
	samples = pcm.Downmix(samples, buf.Format.NumChannels)

	return Encode(samples, buf.Format.SampleRate), nil
}
