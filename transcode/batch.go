// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Failure is a pair that could not be transcoded.
type Failure struct {
	Pair
	Err error
}

// Report summarises one Batch.Run.
type Report struct {
	Converted []Pair
	Skipped   []Pair
	Failed    []Failure
}

// Total is the number of pairs the job expanded to.
func (r Report) Total() int {
	return len(r.Converted) + len(r.Skipped) + len(r.Failed)
}

// Err joins every per-pair failure, or returns nil.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, fmt.Errorf("%s at %dkbps: %w", f.Input, f.Bitrate, f.Err))
	}
	return errors.Join(errs...)
}

// Batch runs transcode jobs one pair at a time.
type Batch struct {
	runner  Runner
	logger  *zap.Logger
	dirMode os.FileMode
	dryRun  bool
}

type Option func(*Batch)

// WithDirMode sets the permissions of created output folders.
func WithDirMode(mode os.FileMode) Option {
	return func(b *Batch) { b.dirMode = mode }
}

// WithDryRun logs the commands that would run and runs none of them.
func WithDryRun() Option {
	return func(b *Batch) { b.dryRun = true }
}

// New returns a Batch that invokes the tool through runner. A nil runner
// uses ExecRunner and a nil logger discards everything.
func New(runner Runner, logger *zap.Logger, opts ...Option) *Batch {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Batch{
		runner:  runner,
		logger:  logger,
		dirMode: 0o755,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run transcodes every pair of job and reports what happened to each.
//
// A failing pair is logged and recorded, and the batch moves on. The
// returned error is non-nil only when the job is invalid, its output
// folder cannot be created, or ctx ends; in the last case the pairs not
// yet attempted are reported as failed with the context error.
func (b *Batch) Run(ctx context.Context, job Job) (Report, error) {
	if err := job.Validate(); err != nil {
		return Report{}, err
	}
	job = job.withDefaults()

	var report Report

	if !b.dryRun {
		if err := os.MkdirAll(job.OutputDir(), b.dirMode); err != nil {
			return report, fmt.Errorf("create output folder: %w", err)
		}
	}

	pairs := job.Pairs()
	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			for _, rest := range pairs[i:] {
				report.Failed = append(report.Failed, Failure{Pair: rest, Err: err})
			}
			b.logger.Warn("transcode batch cancelled",
				zap.Int("remaining", len(pairs)-i), zap.Error(err))
			return report, err
		}

		log := b.logger.With(
			zap.String("input", pair.Input),
			zap.Int("bitrate", pair.Bitrate),
			zap.String("output", pair.Encoded),
		)

		if job.Policy == SkipExisting && pair.exists() {
			log.Info("output already exists, skipping")
			report.Skipped = append(report.Skipped, pair)
			continue
		}

		if err := b.transcode(ctx, job, pair, log); err != nil {
			report.Failed = append(report.Failed, Failure{Pair: pair, Err: err})
			continue
		}

		log.Info("transcoded", zap.String("decoded", pair.Decoded))
		report.Converted = append(report.Converted, pair)
	}

	return report, nil
}

func (b *Batch) transcode(ctx context.Context, job Job, pair Pair, log *zap.Logger) error {
	steps := []struct {
		name string
		args []string
	}{
		{"encode", pair.encodeArgs(job.Codec, job.Policy)},
		{"decode", pair.decodeArgs(job.Policy)},
	}

	// Outputs created by a failed attempt would make the pair look done
	// on the next run.
	encodedExisted, decodedExisted := fileExists(pair.Encoded), fileExists(pair.Decoded)

	for _, step := range steps {
		if b.dryRun {
			log.Info("dry run", zap.String("step", step.name),
				zap.Strings("command", append([]string{job.Tool}, step.args...)))
			continue
		}

		log.Debug("running transcoder", zap.String("step", step.name), zap.Strings("args", step.args))

		res, err := b.runner.Run(ctx, job.Tool, step.args...)
		if err != nil {
			log.Error("transcode failed",
				zap.String("step", step.name),
				zap.Int("exit_code", res.ExitCode),
				zap.String("stderr", lastLine(res.Stderr)),
				zap.Error(err),
			)
			if !encodedExisted {
				removeOutput(pair.Encoded, log)
			}
			if !decodedExisted {
				removeOutput(pair.Decoded, log)
			}
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

// exists reports whether either output of p is already on disk.
func (p Pair) exists() bool {
	return fileExists(p.Encoded) || fileExists(p.Decoded)
}

func removeOutput(path string, log *zap.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("could not remove partial output", zap.String("path", path), zap.Error(err))
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
