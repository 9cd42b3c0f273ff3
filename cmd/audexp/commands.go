// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/audexp"
	"github.com/ik5/audexp/internal/cli"
	"github.com/ik5/audexp/internal/config"
	"github.com/ik5/audexp/noise"
	"github.com/ik5/audexp/transcode"
	"github.com/ik5/audexp/wer"
)

const defaultFrom = "wav"

type TranscodeCmd struct {
	Plan           string   `short:"p" type:"existingfile" help:"YAML plan with one or more jobs."`
	Codec          string   `short:"c" help:"Encoder passed to -c:a, e.g. libmp3lame."`
	From           string   `help:"Source container extension (default: wav)."`
	To             string   `short:"t" help:"Compressed container extension, e.g. mp3."`
	Bitrate        []int    `short:"b" help:"Bitrate in kbit/s; repeat for a sweep."`
	FolderOverride string   `help:"Suffix appended to the output folder name."`
	Root           string   `help:"Output root folder (default: audio)."`
	Tool           string   `help:"Transcoder executable (default: ffmpeg)."`
	Overwrite      bool     `short:"y" help:"Re-encode existing outputs and pass -y to the tool."`
	DryRun         bool     `short:"n" help:"Print the commands without running them."`
	Inputs         []string `arg:"" optional:"" help:"Input audio files."`
}

func (c *TranscodeCmd) Run(g *Globals) error {
	jobs, level, err := c.jobs()
	if err != nil {
		return err
	}

	logger, err := g.Logger(level)
	if err != nil {
		return err
	}

	var opts []transcode.Option
	if c.DryRun {
		opts = append(opts, transcode.WithDryRun())
	} else if err := transcode.Available(jobs[0].Tool); err != nil {
		return err
	}

	batch := transcode.New(transcode.ExecRunner{}, logger, opts...)

	var failed int
	for _, job := range jobs {
		logger.Info("starting sweep",
			zap.String("codec", job.Codec),
			zap.String("to", job.To),
			zap.Ints("bitrates", job.Bitrates),
			zap.Int("inputs", len(job.Inputs)),
			zap.Stringer("policy", job.Policy),
		)

		report, err := batch.Run(g.ctx, job)
		cli.PrintTranscodeReport(os.Stdout, report)
		failed += len(report.Failed)
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d transcode pairs failed", failed)
	}
	return nil
}

// jobs builds the jobs to run from the plan file and the flags. Flags
// that were set override the matching plan fields.
func (c *TranscodeCmd) jobs() ([]transcode.Job, string, error) {
	if c.Plan == "" {
		if len(c.Inputs) == 0 {
			return nil, "", errors.New("no input files specified")
		}
		job, err := c.override(config.JobSpec{})
		if err != nil {
			return nil, "", err
		}
		return []transcode.Job{job}, "", nil
	}

	plan, err := config.LoadPlan(c.Plan)
	if err != nil {
		return nil, "", err
	}

	jobs := make([]transcode.Job, 0, len(plan.Jobs))
	for i, spec := range plan.Jobs {
		job, err := c.override(spec)
		if err != nil {
			return nil, "", fmt.Errorf("plan job %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, plan.LogLevel, nil
}

func (c *TranscodeCmd) override(spec config.JobSpec) (transcode.Job, error) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	if len(c.Inputs) > 0 {
		spec.Inputs = c.Inputs
	}
	if len(c.Bitrate) > 0 {
		spec.Bitrates = c.Bitrate
	}
	if c.Overwrite {
		spec.Policy = transcode.Overwrite.String()
	}

	set(&spec.Codec, c.Codec)
	set(&spec.To, c.To)
	set(&spec.FolderOverride, c.FolderOverride)
	set(&spec.From, c.From)
	set(&spec.Root, c.Root)
	set(&spec.Tool, c.Tool)

	// Defaults go in after the merge so a plan value is only replaced by
	// a flag the user actually passed.
	if spec.From == "" {
		spec.From = defaultFrom
	}
	if spec.Root == "" {
		spec.Root = transcode.DefaultRoot
	}
	if spec.Tool == "" {
		spec.Tool = transcode.DefaultTool
	}

	return spec.Job()
}

type MixCmd struct {
	SNR      float64       `help:"Target signal-to-noise ratio in dB." default:"20"`
	Rate     int           `short:"r" help:"Sample rate both inputs are resampled to." default:"44100"`
	Duration time.Duration `short:"d" help:"Length of the mix, e.g. 3s. Defaults to the signal length."`
	Output   string        `short:"o" help:"Write the mix here (.wav or .aiff)."`
	Seed     int64         `help:"Seed for the noise offset; negative picks a random one." default:"-1"`
	Signal   string        `arg:"" type:"existingfile" help:"Clean recording."`
	Noise    string        `arg:"" type:"existingfile" help:"Noise recording, longer than the mix."`
}

func (c *MixCmd) Run(g *Globals) error {
	logger, err := g.Logger("")
	if err != nil {
		return err
	}

	signal, rate, err := audexp.LoadMono(c.Signal, c.Rate)
	if err != nil {
		return err
	}
	bg, _, err := audexp.LoadMono(c.Noise, rate)
	if err != nil {
		return err
	}

	opts := noise.Options{
		SNR:        c.SNR,
		SampleRate: rate,
		Duration:   c.Duration,
		Output:     c.Output,
	}
	if c.Seed >= 0 {
		opts.Rand = noise.NewRand(uint64(c.Seed))
	}

	mixed, err := audexp.AddNoise(signal, bg, opts)
	if err != nil {
		return err
	}

	achieved, err := noise.SNR(signal, mixed)
	if err != nil {
		return err
	}

	logger.Debug("mixed noise",
		zap.String("signal", c.Signal),
		zap.String("noise", c.Noise),
		zap.Float64("snr", c.SNR),
		zap.Float64("achieved_snr", achieved),
	)

	cli.PrintMix(os.Stdout, c.Output, len(mixed), rate, c.SNR, achieved)
	return nil
}

type WERCmd struct {
	Files      bool   `short:"f" help:"Treat the arguments as files holding one sentence per line."`
	Reference  string `arg:"" help:"Reference transcript."`
	Hypothesis string `arg:"" help:"Hypothesis transcript."`
}

func (c *WERCmd) Run(g *Globals) error {
	if _, err := g.Logger(""); err != nil {
		return err
	}

	if !c.Files {
		m, err := wer.Compute(c.Reference, c.Hypothesis)
		if err != nil {
			return err
		}
		cli.PrintMeasures(os.Stdout, m)
		return nil
	}

	refs, err := readLines(c.Reference)
	if err != nil {
		return err
	}
	hyps, err := readLines(c.Hypothesis)
	if err != nil {
		return err
	}

	m, err := wer.ComputeCorpus(refs, hyps)
	if err != nil {
		return err
	}
	cli.PrintField(os.Stdout, "Sentences:", len(refs))
	cli.PrintMeasures(os.Stdout, m)
	return nil
}

// readLines returns the lines of path with surrounding blanks trimmed.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
