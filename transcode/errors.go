// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidJob = errors.New("invalid transcode job")
	ErrToolFailed = errors.New("transcoder exited with an error")
)

// ToolError describes a transcoder run that exited non-zero.
type ToolError struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	name := "transcoder"
	if len(e.Command) > 0 {
		name = e.Command[0]
	}

	msg := fmt.Sprintf("%s exited with status %d", name, e.ExitCode)
	if line := lastLine(e.Stderr); line != "" {
		msg += ": " + line
	}

	return msg
}

func (e *ToolError) Unwrap() error { return ErrToolFailed }

// lastLine returns the final non-blank line of s. ffmpeg prints the
// actual failure reason last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
