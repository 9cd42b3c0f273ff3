// SPDX-License-Identifier: EPL-2.0

// Package config loads experiment plans for the command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audexp/transcode"
)

var ErrEmptyPlan = errors.New("plan has no transcode jobs")

// Plan is a YAML file describing one or more transcode sweeps.
//
//	log_level: info
//	jobs:
//	  - inputs: ["corpus/*.wav"]
//	    codec: libopus
//	    from: wav
//	    to: opus
//	    bitrates: [6, 12, 24]
//	    policy: skip-existing
type Plan struct {
	LogLevel string    `yaml:"log_level"`
	Jobs     []JobSpec `yaml:"jobs"`
}

// JobSpec is the YAML form of transcode.Job. Inputs may be glob patterns.
type JobSpec struct {
	Inputs         []string `yaml:"inputs"`
	Codec          string   `yaml:"codec"`
	From           string   `yaml:"from"`
	To             string   `yaml:"to"`
	Bitrates       []int    `yaml:"bitrates"`
	FolderOverride string   `yaml:"folder_override"`
	Root           string   `yaml:"root"`
	Tool           string   `yaml:"tool"`
	Policy         string   `yaml:"policy"`
}

// LoadPlan reads and validates the plan at path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}

	if len(plan.Jobs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyPlan)
	}

	return &plan, nil
}

// Job converts the spec into a validated transcode.Job, expanding glob
// patterns in Inputs. Patterns that match nothing are kept as literal
// paths so the transcoder reports them.
func (s JobSpec) Job() (transcode.Job, error) {
	policy, err := transcode.ParsePolicy(s.Policy)
	if err != nil {
		return transcode.Job{}, err
	}

	var inputs []string
	for _, pattern := range s.Inputs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return transcode.Job{}, fmt.Errorf("input %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		slices.Sort(matches)
		inputs = append(inputs, matches...)
	}

	job := transcode.Job{
		Inputs:         inputs,
		Codec:          s.Codec,
		From:           s.From,
		To:             s.To,
		Bitrates:       s.Bitrates,
		FolderOverride: s.FolderOverride,
		Root:           s.Root,
		Tool:           s.Tool,
		Policy:         policy,
	}

	if err := job.Validate(); err != nil {
		return transcode.Job{}, err
	}

	return job, nil
}
