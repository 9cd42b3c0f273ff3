// SPDX-License-Identifier: EPL-2.0

package wer

import "fmt"

// Measures counts the word alignment between a reference and a
// hypothesis and the rates derived from it.
type Measures struct {
	Hits          int
	Substitutions int
	Deletions     int
	Insertions    int

	WER float64
	MER float64
	WIL float64
	WIP float64
}

// Errors is the edit distance between the two word sequences.
func (m Measures) Errors() int {
	return m.Substitutions + m.Deletions + m.Insertions
}

func (m *Measures) add(o Measures) {
	m.Hits += o.Hits
	m.Substitutions += o.Substitutions
	m.Deletions += o.Deletions
	m.Insertions += o.Insertions
}

func (m *Measures) rates() {
	h := float64(m.Hits)
	errs := float64(m.Errors())
	refWords := float64(m.Hits + m.Substitutions + m.Deletions)
	hypWords := float64(m.Hits + m.Substitutions + m.Insertions)

	m.WER = errs / refWords
	m.MER = errs / (refWords + float64(m.Insertions))

	m.WIP = 0
	if hypWords > 0 {
		m.WIP = (h / refWords) * (h / hypWords)
	}
	m.WIL = 1 - m.WIP
}

// Scorer normalizes truth and hypothesis text with separate pipelines.
// The zero value uses DefaultPipeline for both.
type Scorer struct {
	Truth      *Pipeline
	Hypothesis *Pipeline
}

func (s Scorer) pipelines() (Pipeline, Pipeline) {
	truth, hyp := DefaultPipeline(), DefaultPipeline()
	if s.Truth != nil {
		truth = *s.Truth
	}
	if s.Hypothesis != nil {
		hyp = *s.Hypothesis
	}
	return truth, hyp
}

// Compute aligns one reference with one hypothesis.
func (s Scorer) Compute(reference, hypothesis string) (Measures, error) {
	truth, hyp := s.pipelines()

	ref := truth.Words(reference)
	if len(ref) == 0 {
		return Measures{}, ErrEmptyReference
	}

	m := align(ref, hyp.Words(hypothesis))
	m.rates()
	return m, nil
}

// ComputeCorpus scores paired sentences by pooling their edit operations,
// so long sentences weigh more than short ones.
func (s Scorer) ComputeCorpus(references, hypotheses []string) (Measures, error) {
	if len(references) != len(hypotheses) {
		return Measures{}, fmt.Errorf("%w: %d references, %d hypotheses",
			ErrLengthMismatch, len(references), len(hypotheses))
	}
	if len(references) == 0 {
		return Measures{}, ErrEmptyReference
	}

	truth, hyp := s.pipelines()

	var total Measures
	for i := range references {
		ref := truth.Words(references[i])
		if len(ref) == 0 {
			return Measures{}, fmt.Errorf("sentence %d: %w", i, ErrEmptyReference)
		}
		total.add(align(ref, hyp.Words(hypotheses[i])))
	}

	total.rates()
	return total, nil
}

func (s Scorer) WER(reference, hypothesis string) (float64, error) {
	m, err := s.Compute(reference, hypothesis)
	if err != nil {
		return 0, err
	}
	return m.WER, nil
}

// WER returns the word error rate of hypothesis against reference using
// DefaultPipeline.
func WER(reference, hypothesis string) (float64, error) {
	return Scorer{}.WER(reference, hypothesis)
}

func Compute(reference, hypothesis string) (Measures, error) {
	return Scorer{}.Compute(reference, hypothesis)
}

func ComputeCorpus(references, hypotheses []string) (Measures, error) {
	return Scorer{}.ComputeCorpus(references, hypotheses)
}

// align counts hits and edits along one minimal Levenshtein path.
func align(ref, hyp []string) Measures {
	rows, cols := len(ref)+1, len(hyp)+1
	d := make([]int, rows*cols)
	at := func(i, j int) *int { return &d[i*cols+j] }

	for i := range rows {
		*at(i, 0) = i
	}
	for j := range cols {
		*at(0, j) = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			*at(i, j) = min(
				*at(i-1, j-1)+cost,
				*at(i-1, j)+1,
				*at(i, j-1)+1,
			)
		}
	}

	var m Measures
	i, j := len(ref), len(hyp)
	for i > 0 || j > 0 {
		cur := *at(i, j)
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && cur == *at(i-1, j-1):
			m.Hits++
			i, j = i-1, j-1
		case i > 0 && j > 0 && cur == *at(i-1, j-1)+1:
			m.Substitutions++
			i, j = i-1, j-1
		case i > 0 && cur == *at(i-1, j)+1:
			m.Deletions++
			i--
		default:
			m.Insertions++
			j--
		}
	}

	return m
}
