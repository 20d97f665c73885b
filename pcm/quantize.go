// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"github.com/monowav/monowav/utils"
)

// SampleBytes is the encoded width of one 16-bit sample.
const SampleBytes = 2

const (
	scaleNeg = 32768 // 0x8000, reaches math.MinInt16 at -1
	scalePos = 32767 // 0x7FFF, reaches math.MaxInt16 at +1
)

// Quantize converts one float sample in [-1, 1] to signed 16-bit PCM.
//
// Out-of-range values clamp to the nearest bound, so infinities map to
// the extremes. NaN maps to 0 (silence). Negative values scale by 32768
// and non-negative by 32767; both extremes are therefore exactly
// representable and the result always fits int16. Fractional results
// truncate toward zero.
func Quantize(x float32) int16 {
	if x != x { // NaN
		return 0
	}

	x = utils.Clamp(x, -1, 1)

	if x < 0 {
		return int16(x * scaleNeg)
	}

	return int16(x * scalePos)
}
