// SPDX-License-Identifier: EPL-2.0

package monowav

import (
	"io"
	"sync"
)

// SampleReader decodes an entire stream into mono float32 samples in
// [-1, 1], returning the samples and the source sample rate. The
// formats subpackages provide SampleReaders for MP3, Ogg Vorbis and
// AIFF input.
type SampleReader func(r io.Reader) ([]float32, int, error)

// Registry maps format keys (e.g. "mp3", "ogg", "aiff") to
// SampleReaders, so callers can dispatch on a file extension or a
// sniffed format.
type Registry struct {
	readers map[string]SampleReader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]SampleReader),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, read SampleReader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.readers[format] = read
}

func (r *Registry) Get(format string) (SampleReader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	read, ok := r.readers[format]
	return read, ok
}
