package utils

// Clamp limits x to the closed interval [lo, hi].
//
// NaN compares false against both bounds and is returned unchanged;
// callers that cannot tolerate NaN must reject it before clamping.
func Clamp(x, lo, hi float32) float32 {
	if x > hi {
		return hi
	}

	if x < lo {
		return lo
	}

	return x
}
