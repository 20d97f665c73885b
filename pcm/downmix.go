package pcm

// Downmix averages interleaved multi-channel frames into a mono slice.
//
// channels <= 1 returns interleaved unchanged without copying. A
// trailing partial frame is dropped. The result aliases nothing: for
// channels > 1 a fresh slice of len(interleaved)/channels is returned.
func Downmix(interleaved []float32, channels int) []float32 {
	if channels <= 1 {
		return interleaved
	}

	frames := len(interleaved) / channels
	mono := make([]float32, frames)

	// Cache division result for the generic path
	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1 // f * 2
			mono[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2 // f * 4
			sum := interleaved[idx] + interleaved[idx+1] + interleaved[idx+2] + interleaved[idx+3]
			mono[f] = sum * 0.25
		}
	default: // Generic path
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels

			for c := range channels {
				sum += interleaved[baseIdx+c]
			}

			mono[f] = sum * invChannels
		}
	}

	return mono
}
