// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audexp/utils"
)

// Resample converts interleaved samples from srcRate to dstRate using cubic
// interpolation, preserving the channel count. When downsampling, a
// one-pole low-pass runs over the input first to tame aliasing.
//
// The output holds len(samples)/channels*dstRate/srcRate frames.
func Resample(samples []float64, channels, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 || len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	if srcRate == dstRate {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out, nil
	}

	in := samples
	if srcRate > dstRate {
		in = lowPass(samples, channels, 0.5)
	}

	frames := len(in) / channels
	outFrames := int(int64(frames) * int64(dstRate) / int64(srcRate))
	out := make([]float64, outFrames*channels)

	at := func(frame, ch int) float64 {
		frame = min(max(frame, 0), frames-1)
		return in[frame*channels+ch]
	}

	ratio := float64(srcRate) / float64(dstRate)
	for i := range outFrames {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)

		for ch := range channels {
			out[i*channels+ch] = utils.CubicInterpolate(
				at(idx-1, ch), at(idx, ch), at(idx+1, ch), at(idx+2, ch), frac)
		}
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1] per channel,
// seeded with the first frame so constant input passes unchanged.
func lowPass(samples []float64, channels int, alpha float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	state := make([]float64, channels)
	copy(state, samples[:channels])

	for i, x := range samples {
		ch := i % channels
		state[ch] = alpha*x + (1-alpha)*state[ch]
		out[i] = state[ch]
	}

	return out
}
