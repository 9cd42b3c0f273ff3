// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the positive full-scale value of signed PCM at bitDepth.
// Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 127
	case 24:
		return 8388607
	case 32:
		return 2147483647
	default:
		return 32767
	}
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * FullScale(bitDepth))
}

// PCMToFloat converts a signed integer sample back into [-1, 1].
func PCMToFloat(v int, bitDepth int) float64 {
	return float64(v) / (FullScale(bitDepth) + 1)
}
