// SPDX-License-Identifier: EPL-2.0

// Package wer scores speech recognition output by word error rate.
//
// Both the reference and the hypothesis pass through a Pipeline of
// Normalizer steps before they are split into words. DefaultPipeline
// expands English contractions, lowercases, collapses whitespace and
// drops punctuation, so "I'm fine." and "i am fine" score as identical.
//
// Words are aligned by Levenshtein distance with unit costs. WER is
//
//	(substitutions + deletions + insertions) / reference words
//
// and is not bounded above: a hypothesis with many insertions can score
// more than 1. Compute also reports match error rate (MER), word
// information lost (WIL) and word information preserved (WIP).
package wer
