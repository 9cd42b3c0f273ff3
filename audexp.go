// SPDX-License-Identifier: EPL-2.0

package audexp

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/audexp/audio"
	"github.com/ik5/audexp/formats/aiff"
	"github.com/ik5/audexp/formats/mp3"
	"github.com/ik5/audexp/formats/vorbis"
	"github.com/ik5/audexp/formats/wav"
	"github.com/ik5/audexp/noise"
	"github.com/ik5/audexp/transcode"
	"github.com/ik5/audexp/wer"
)

var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry returns a registry that reads wav, aiff, mp3 and ogg files
// and writes wav and aiff files.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	r.RegisterEncoder("wav", wav.Encoder{})
	r.RegisterEncoder("aiff", aiff.Encoder{})
	r.RegisterEncoder("aif", aiff.Encoder{})

	return r
}

// DefaultRegistry is the shared registry used by LoadMono, Save and
// AddNoise. Registering a codec on it affects all of them.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}

// LoadMono decodes path, averages its channels and resamples the result
// to targetRate. A targetRate of zero keeps the file's own rate. The
// returned rate is the one the samples are at.
func LoadMono(path string, targetRate int) ([]float64, int, error) {
	src, err := DefaultRegistry().Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	samples, err := audio.ReadAll(audio.NewMonoMixer(src))
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	rate := src.SampleRate()
	if targetRate <= 0 || targetRate == rate {
		return samples, rate, nil
	}

	out, err := audio.Resample(samples, 1, rate, targetRate)
	if err != nil {
		return nil, 0, fmt.Errorf("resample %s: %w", path, err)
	}

	return out, targetRate, nil
}

// Save writes mono samples to path in the format its extension names.
func Save(path string, sampleRate int, samples []float64) error {
	return DefaultRegistry().Save(path, sampleRate, samples)
}

// NoiseMultiplier is noise.Multiplier.
func NoiseMultiplier(signal, bg []float64, snr float64) (float64, error) {
	return noise.Multiplier(signal, bg, snr)
}

// AddNoise mixes bg into signal. When opts.Output is set and no Saver is
// given, the file is written through DefaultRegistry.
func AddNoise(signal, bg []float64, opts noise.Options) ([]float64, error) {
	if opts.Output != "" && opts.Saver == nil {
		opts.Saver = DefaultRegistry()
	}
	return noise.Mix(signal, bg, opts)
}

// WER scores hypothesis against reference with the default text
// normalization.
func WER(reference, hypothesis string) (float64, error) {
	return wer.WER(reference, hypothesis)
}

// CompressDecompress runs job through ffmpeg on the local machine.
func CompressDecompress(ctx context.Context, job transcode.Job, logger *zap.Logger) (transcode.Report, error) {
	return transcode.New(transcode.ExecRunner{}, logger).Run(ctx, job)
}
