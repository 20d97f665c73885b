// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestDownmix_MonoPassthrough(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3}

	out := Downmix(in, 1)
	if len(out) != len(in) {
		t.Fatalf("Downmix() len = %d, want %d", len(out), len(in))
	}

	// Mono input passes through without copying
	in[0] = 0.9
	if out[0] != 0.9 {
		t.Error("Downmix() copied mono input, want same slice")
	}
}

func TestDownmix_StereoToMono(t *testing.T) {
	t.Parallel()

	// Left 0.4, right 0.6 in every frame
	in := []float32{0.4, 0.6, 0.4, 0.6, 0.4, 0.6}

	out := Downmix(in, 2)
	if len(out) != 3 {
		t.Fatalf("Downmix() len = %d, want 3", len(out))
	}

	// Average: (0.4 + 0.6) / 2 = 0.5
	for i, v := range out {
		if math.Abs(float64(v-0.5)) > 0.001 {
			t.Errorf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestDownmix_QuadToMono(t *testing.T) {
	t.Parallel()

	in := []float32{0.0, 0.1, 0.2, 0.3, 0.0, 0.1, 0.2, 0.3}

	out := Downmix(in, 4)
	if len(out) != 2 {
		t.Fatalf("Downmix() len = %d, want 2", len(out))
	}

	// Average: (0.0 + 0.1 + 0.2 + 0.3) / 4 = 0.15
	for i, v := range out {
		if math.Abs(float64(v-0.15)) > 0.001 {
			t.Errorf("out[%d] = %v, want 0.15", i, v)
		}
	}
}

func TestDownmix_GenericChannels(t *testing.T) {
	t.Parallel()

	// 3 channels, values 0.0 0.3 0.6 per frame
	in := []float32{0.0, 0.3, 0.6, 0.0, 0.3, 0.6}

	out := Downmix(in, 3)
	if len(out) != 2 {
		t.Fatalf("Downmix() len = %d, want 2", len(out))
	}

	// Average: (0.0 + 0.3 + 0.6) / 3 = 0.3
	for i, v := range out {
		if math.Abs(float64(v-0.3)) > 0.001 {
			t.Errorf("out[%d] = %v, want 0.3", i, v)
		}
	}
}

func TestDownmix_ManyChannels(t *testing.T) {
	t.Parallel()

	// 8 channels, values 0.0 .. 0.7
	in := make([]float32, 16)
	for i := range in {
		in[i] = float32(i%8) * 0.1
	}

	out := Downmix(in, 8)
	if len(out) != 2 {
		t.Fatalf("Downmix() len = %d, want 2", len(out))
	}

	// Average: (0.0 + 0.1 + ... + 0.7) / 8 = 0.35
	for i, v := range out {
		if math.Abs(float64(v-0.35)) > 0.01 {
			t.Errorf("out[%d] = %v, want ≈0.35", i, v)
		}
	}
}

func TestDownmix_PartialFrameDropped(t *testing.T) {
	t.Parallel()

	// 5 samples of stereo: two full frames, one dangling sample
	in := []float32{0.2, 0.4, 0.2, 0.4, 0.9}

	out := Downmix(in, 2)
	if len(out) != 2 {
		t.Errorf("Downmix() len = %d, want 2 (partial frame dropped)", len(out))
	}
}

func TestDownmix_Empty(t *testing.T) {
	t.Parallel()

	out := Downmix(nil, 2)
	if len(out) != 0 {
		t.Errorf("Downmix(nil, 2) len = %d, want 0", len(out))
	}

	out = Downmix([]float32{}, 4)
	if len(out) != 0 {
		t.Errorf("Downmix(empty, 4) len = %d, want 0", len(out))
	}
}

func TestDownmix_ZeroChannels(t *testing.T) {
	t.Parallel()

	// Nonsensical channel counts behave like mono passthrough
	in := []float32{0.1, 0.2}

	out := Downmix(in, 0)
	if len(out) != 2 {
		t.Errorf("Downmix(in, 0) len = %d, want 2", len(out))
	}

	out = Downmix(in, -1)
	if len(out) != 2 {
		t.Errorf("Downmix(in, -1) len = %d, want 2", len(out))
	}
}

func TestDownmix_FreshSlice(t *testing.T) {
	t.Parallel()

	in := []float32{0.4, 0.6}
	out := Downmix(in, 2)

	// Multi-channel output must not alias the input
	in[0] = 0.0
	if out[0] != 0.5 {
		t.Errorf("out[0] = %v after mutating input, want 0.5", out[0])
	}
}

// BenchmarkDownmix_Stereo benchmarks the stereo fast path
func BenchmarkDownmix_Stereo(b *testing.B) {
	in := make([]float32, 88200)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = Downmix(in, 2)
	}
}

// BenchmarkDownmix_ManyChannels benchmarks the generic path
func BenchmarkDownmix_ManyChannels(b *testing.B) {
	in := make([]float32, 16*8000)
	for i := range in {
		in[i] = 0.0625
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = Downmix(in, 16)
	}
}
