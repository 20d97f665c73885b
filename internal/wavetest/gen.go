// SPDX-License-Identifier: EPL-2.0

// Package wavetest generates deterministic sample slices for tests.
package wavetest

import (
	"math"
)

// Gen builds n samples from a waveform function of the sample index.
func Gen(n int, waveform func(sample int) float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = waveform(i)
	}

	return out
}

// Silence returns n zero samples.
func Silence(n int) []float32 {
	return Gen(n, func(int) float32 {
		return 0.0
	})
}

// Constant returns n samples of value.
func Constant(n int, value float32) []float32 {
	return Gen(n, func(int) float32 {
		return value
	})
}

// Sine returns n samples of a frequency-Hz sine wave at sampleRate.
func Sine(sampleRate, n int, frequency float64) []float32 {
	return Gen(n, func(sample int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}
