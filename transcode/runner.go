// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result is what a finished tool invocation left behind.
type Result struct {
	Command  []string
	ExitCode int
	Stderr   string
}

// Runner executes an external program and waits for it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs programs with os/exec. Stdout is discarded and stdin is
// empty, so a tool waiting for confirmation fails instead of hanging.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Command: append([]string{name}, args...),
		Stderr:  stderr.String(),
	}

	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, fmt.Errorf("run %s: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ToolError{Command: res.Command, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	res.ExitCode = -1
	return res, fmt.Errorf("run %s: %w", name, err)
}

// Available reports whether tool can be found in PATH.
func Available(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s not found: %w", tool, err)
	}
	return nil
}
