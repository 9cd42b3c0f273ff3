// SPDX-License-Identifier: EPL-2.0

package wer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWER(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
		hyp  string
		want float64
	}{
		{"contraction expanded", "I'm fine", "I am fine", 0},
		{"substitution and insertion", "the cat sat", "a cat sat mat", 2.0 / 3},
		{"case and punctuation ignored", "Hello, World!", "hello world", 0},
		{"empty hypothesis", "one two", "", 1},
		{"insertions exceed one", "a", "a b c d", 3},
		{"all wrong", "a b", "c d", 1},
		{"single tab is not a separator", "a b c", "a\tb c", 2.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := WER(tt.ref, tt.hyp)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestWER_EmptyReference(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"", "   ", "?!."} {
		_, err := WER(ref, "anything")
		assert.ErrorIs(t, err, ErrEmptyReference, "reference %q", ref)
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	m, err := Compute("the cat sat", "a cat sat mat")
	require.NoError(t, err)

	assert.Equal(t, 2, m.Hits)
	assert.Equal(t, 1, m.Substitutions)
	assert.Equal(t, 0, m.Deletions)
	assert.Equal(t, 1, m.Insertions)
	assert.Equal(t, 2, m.Errors())

	assert.InDelta(t, 2.0/3, m.WER, 1e-12)
	assert.InDelta(t, 0.5, m.MER, 1e-12)
	assert.InDelta(t, 1.0/3, m.WIP, 1e-12)
	assert.InDelta(t, 2.0/3, m.WIL, 1e-12)
}

func TestCompute_Deletions(t *testing.T) {
	t.Parallel()

	m, err := Compute("one two three four", "one four")
	require.NoError(t, err)

	assert.Equal(t, 2, m.Hits)
	assert.Equal(t, 2, m.Deletions)
	assert.Equal(t, 0, m.Substitutions+m.Insertions)
	assert.InDelta(t, 0.5, m.WER, 1e-12)
}

func TestCompute_EmptyHypothesis(t *testing.T) {
	t.Parallel()

	m, err := Compute("a b", "")
	require.NoError(t, err)

	assert.Equal(t, 2, m.Deletions)
	assert.InDelta(t, 1.0, m.MER, 0)
	assert.Zero(t, m.WIP)
	assert.InDelta(t, 1.0, m.WIL, 0)
}

func TestComputeCorpus(t *testing.T) {
	t.Parallel()

	m, err := ComputeCorpus(
		[]string{"the cat sat", "hello world"},
		[]string{"a cat sat mat", "Hello, world."},
	)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Hits)
	assert.Equal(t, 2, m.Errors())
	assert.InDelta(t, 0.4, m.WER, 1e-12)
}

func TestComputeCorpus_Errors(t *testing.T) {
	t.Parallel()

	_, err := ComputeCorpus([]string{"a"}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ComputeCorpus(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyReference)

	_, err = ComputeCorpus([]string{"a", ""}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrEmptyReference)
}

func TestScorer_CustomPipelines(t *testing.T) {
	t.Parallel()

	raw := &Pipeline{}
	s := Scorer{Truth: raw}

	// Only the hypothesis is lowercased, so the words differ.
	got, err := s.WER("Hello", "HELLO")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 0)

	got, err = Scorer{Truth: raw, Hypothesis: raw}.WER("Hello", "Hello")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func BenchmarkWER(b *testing.B) {
	ref := "the quick brown fox jumps over the lazy dog and keeps running far away"
	hyp := "a quick brown fox jumped over the lazy dogs and keeps on running away"

	for b.Loop() {
		if _, err := WER(ref, hyp); err != nil {
			b.Fatal(err)
		}
	}
}
