// SPDX-License-Identifier: EPL-2.0

package wer

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Normalizer is one named text transformation.
type Normalizer interface {
	Name() string
	Normalize(s string) string
}

// NormalizerFunc adapts a plain function to Normalizer.
type NormalizerFunc struct {
	Label string
	Fn    func(string) string
}

func (f NormalizerFunc) Name() string              { return f.Label }
func (f NormalizerFunc) Normalize(s string) string { return f.Fn(s) }

// contractions are expanded in this order, so whole-word forms win over
// the bare suffixes that follow them.
var contractions = []struct{ from, to string }{
	{"won't", "will not"},
	{"can't", "can not"},
	{"let's", "let us"},
	{"n't", " not"},
	{"'re", " are"},
	{"'s", " is"},
	{"'d", " would"},
	{"'ll", " will"},
	{"'t", " not"},
	{"'ve", " have"},
	{"'m", " am"},
}

var multipleSpaces = regexp.MustCompile(`\s\s+`)

var (
	// ExpandContractions rewrites common English contractions. Matching is
	// case sensitive, so it belongs before ToLowerCase.
	ExpandContractions Normalizer = NormalizerFunc{"expand_contractions", expandContractions}

	// RemoveEmptyStrings reduces a blank string to "".
	RemoveEmptyStrings Normalizer = NormalizerFunc{"remove_empty_strings", strings.TrimSpace}

	ToLowerCase Normalizer = NormalizerFunc{"to_lower_case", strings.ToLower}

	// RemoveMultipleSpaces replaces every run of two or more whitespace
	// runes with one space.
	RemoveMultipleSpaces Normalizer = NormalizerFunc{"remove_multiple_spaces", func(s string) string {
		return multipleSpaces.ReplaceAllString(s, " ")
	}}

	Strip Normalizer = NormalizerFunc{"strip", strings.TrimSpace}

	// RemovePunctuation deletes every rune in a Unicode punctuation
	// category, apostrophes included.
	RemovePunctuation Normalizer = NormalizerFunc{"remove_punctuation", func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, s)
	}}
)

func expandContractions(s string) string {
	for _, c := range contractions {
		s = strings.ReplaceAll(s, c.from, c.to)
	}
	return s
}

// Pipeline applies its steps in order.
type Pipeline struct {
	Steps []Normalizer
}

// DefaultPipeline returns the steps used by WER and Compute.
func DefaultPipeline() Pipeline {
	return Pipeline{Steps: []Normalizer{
		ExpandContractions,
		RemoveEmptyStrings,
		ToLowerCase,
		RemoveMultipleSpaces,
		Strip,
		RemovePunctuation,
	}}
}

func (p Pipeline) Apply(s string) string {
	for _, step := range p.Steps {
		s = step.Normalize(s)
	}
	return s
}

// Words normalizes s and splits it with Tokenize.
func (p Pipeline) Words(s string) []string {
	return Tokenize(p.Apply(s))
}

// Names lists the step names in order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p.Steps))
	for i, step := range p.Steps {
		names[i] = step.Name()
	}
	return names
}

// Tokenize splits s on single spaces and drops empty tokens. Other
// whitespace, such as a tab, stays inside the word.
func Tokenize(s string) []string {
	words := strings.Split(s, " ")
	return slices.DeleteFunc(words, func(w string) bool { return w == "" })
}
