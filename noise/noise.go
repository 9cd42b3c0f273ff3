// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultSNR        = 20.0
	DefaultSampleRate = 44100
)

// Saver persists a mono signal. audio.Registry satisfies it.
type Saver interface {
	Save(path string, sampleRate int, samples []float64) error
}

type Options struct {
	// SNR in dB.
	SNR float64

	// SampleRate used for Duration and for the saved file. Zero means
	// DefaultSampleRate.
	SampleRate int

	// Duration of the mix. Zero mixes the whole signal.
	Duration time.Duration

	// Output, when set, is written through Saver. The format follows the
	// file extension.
	Output string

	Rand  *rand.Rand
	Saver Saver
}

// DefaultOptions returns a 20 dB mix at 44.1 kHz.
func DefaultOptions() Options {
	return Options{SNR: DefaultSNR, SampleRate: DefaultSampleRate}
}

func (o Options) sampleRate() int {
	if o.SampleRate <= 0 {
		return DefaultSampleRate
	}
	return o.SampleRate
}

// NewRand returns a PCG generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MeanSquare returns the average power of x.
func MeanSquare(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptySignal
	}

	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return sum / float64(len(x)), nil
}

// Multiplier returns the factor noise must be scaled by to sit snr dB
// below signal.
func Multiplier(signal, noise []float64, snr float64) (float64, error) {
	sig, err := MeanSquare(signal)
	if err != nil {
		return 0, fmt.Errorf("signal: %w", err)
	}

	nse, err := MeanSquare(noise)
	if err != nil {
		return 0, fmt.Errorf("noise: %w", err)
	}
	if nse == 0 {
		return 0, ErrSilentNoise
	}

	return sig / (nse * math.Pow(10, snr/10)), nil
}

// Mix returns signal with a random window of scaled noise added to it.
// The result holds min(num_samples, len(signal)) samples, where
// num_samples comes from opts.Duration or defaults to len(signal).
//
// The result is returned even when saving it fails.
func Mix(signal, noise []float64, opts Options) ([]float64, error) {
	if opts.Output != "" && opts.Saver == nil {
		return nil, ErrNoSaver
	}

	mult, err := Multiplier(signal, noise, opts.SNR)
	if err != nil {
		return nil, err
	}

	rate := opts.sampleRate()
	numSamples := len(signal)
	if opts.Duration > 0 {
		numSamples = int(int64(opts.Duration) * int64(rate) / int64(time.Second))
	}

	if len(noise) <= numSamples {
		return nil, fmt.Errorf("%w: have %d noise samples, need more than %d",
			ErrNoiseTooShort, len(noise), numSamples)
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = NewRand(seed)
	}
	offset := rng.IntN(len(noise) - numSamples)

	n := min(numSamples, len(signal))
	out := make([]float64, n)
	for i := range out {
		out[i] = signal[i] + mult*noise[offset+i]
	}

	if opts.Output != "" {
		if err := opts.Saver.Save(opts.Output, rate, out); err != nil {
			return out, fmt.Errorf("save %s: %w", opts.Output, err)
		}
	}

	return out, nil
}

// SNR reports the signal-to-noise ratio in dB of noisy relative to the
// clean signal, over their common length.
func SNR(signal, noisy []float64) (float64, error) {
	n := min(len(signal), len(noisy))
	if n == 0 {
		return 0, ErrEmptySignal
	}

	var sig, residual float64
	for i := range n {
		d := noisy[i] - signal[i]
		sig += signal[i] * signal[i]
		residual += d * d
	}

	if residual == 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(sig/residual), nil
}
