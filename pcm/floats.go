package pcm

// Floats normalizes integer PCM samples to float32 in [-1, 1] by the
// source bit depth. Depths 8, 16, 24 and 32 divide by their full-scale
// magnitude; any other depth normalizes as 16-bit.
func Floats(data []int, bitDepth int) []float32 {
	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0 // Default to 16-bit
	}

	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v) / maxVal
	}

	return out
}
