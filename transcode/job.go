// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Policy decides what happens when output files already exist.
type Policy int

const (
	// SkipExisting leaves a pair alone when either of its outputs exists.
	SkipExisting Policy = iota
	// Overwrite always transcodes and passes -y so the tool replaces
	// existing files.
	Overwrite
)

func (p Policy) String() string {
	switch p {
	case SkipExisting:
		return "skip-existing"
	case Overwrite:
		return "overwrite"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy accepts the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip", "skip-existing":
		return SkipExisting, nil
	case "overwrite", "force":
		return Overwrite, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidJob, s)
}

const (
	DefaultRoot    = "audio"
	DefaultTool    = "ffmpeg"
	DefaultBitrate = 128
)

// Job describes a compress-then-decompress sweep over a set of inputs.
//
// Every input is encoded with Codec at each bitrate into format To, and
// the result is decoded back into format From. Outputs land in
// <Root>/<To><FolderOverride>/.
type Job struct {
	Inputs []string
	Codec  string
	// From is the source container extension, e.g. "wav".
	From string
	// To is the compressed container extension, e.g. "mp3".
	To string
	// Bitrates in kbit/s. Empty means DefaultBitrate.
	Bitrates []int
	// FolderOverride is appended verbatim to the output folder name.
	FolderOverride string
	Root           string
	Tool           string
	Policy         Policy
}

// withDefaults fills the zero-valued fields.
func (j Job) withDefaults() Job {
	if j.Root == "" {
		j.Root = DefaultRoot
	}
	if j.Tool == "" {
		j.Tool = DefaultTool
	}
	if len(j.Bitrates) == 0 {
		j.Bitrates = []int{DefaultBitrate}
	}
	j.From = strings.TrimPrefix(j.From, ".")
	j.To = strings.TrimPrefix(j.To, ".")
	return j
}

// Validate reports obviously broken jobs. Codec and container
// compatibility is left to the transcoder.
func (j Job) Validate() error {
	j = j.withDefaults()

	switch {
	case strings.TrimSpace(j.Codec) == "":
		return fmt.Errorf("%w: codec is required", ErrInvalidJob)
	case j.From == "":
		return fmt.Errorf("%w: source format is required", ErrInvalidJob)
	case j.To == "":
		return fmt.Errorf("%w: target format is required", ErrInvalidJob)
	}

	for _, br := range j.Bitrates {
		if br <= 0 {
			return fmt.Errorf("%w: bitrate %d must be positive", ErrInvalidJob, br)
		}
	}

	for _, in := range j.Inputs {
		if in == "" {
			return fmt.Errorf("%w: empty input path", ErrInvalidJob)
		}
	}

	return nil
}

// OutputDir is the folder every output of j is written to.
func (j Job) OutputDir() string {
	j = j.withDefaults()
	return filepath.Join(j.Root, j.To+j.FolderOverride)
}

// OutputBase returns the extension-less output path for one input at one
// bitrate: <dir>/<basename>+<bitrate>kbps.
func (j Job) OutputBase(input string, bitrate int) string {
	return filepath.Join(j.OutputDir(), fmt.Sprintf("%s+%dkbps", Basename(input), bitrate))
}

// Pair returns the unit of work for input at bitrate.
func (j Job) Pair(input string, bitrate int) Pair {
	j = j.withDefaults()
	base := j.OutputBase(input, bitrate)

	return Pair{
		Input:   input,
		Bitrate: bitrate,
		Encoded: base + "." + j.To,
		Decoded: base + "." + j.From,
	}
}

// Pairs expands the job into input x bitrate pairs, inputs outermost.
func (j Job) Pairs() []Pair {
	j = j.withDefaults()

	pairs := make([]Pair, 0, len(j.Inputs)*len(j.Bitrates))
	for _, in := range j.Inputs {
		for _, br := range j.Bitrates {
			pairs = append(pairs, j.Pair(in, br))
		}
	}
	return pairs
}

// Basename is the file name of path without its last extension.
func Basename(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Pair is one input transcoded at one bitrate.
type Pair struct {
	Input   string
	Bitrate int
	// Encoded is the compressed file.
	Encoded string
	// Decoded is Encoded converted back to the source format.
	Decoded string
}

func (p Pair) encodeArgs(codec string, policy Policy) []string {
	args := []string{
		"-i", p.Input,
		"-c:a", codec,
		"-b:a", strconv.Itoa(p.Bitrate) + "k",
		p.Encoded,
	}
	return withForce(args, policy)
}

func (p Pair) decodeArgs(policy Policy) []string {
	args := []string{"-i", p.Encoded, "-vn", p.Decoded}
	return withForce(args, policy)
}

func withForce(args []string, policy Policy) []string {
	if policy == Overwrite {
		return append(args, "-y")
	}
	return args
}
