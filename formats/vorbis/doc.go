// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through
// github.com/jfreymuth/oggvorbis.
//
// Channel layout follows the stream. The decoder already yields float32
// values in [-1, 1]; the source widens them to float64 without scaling.
// Reads are trimmed to whole frames, so a destination shorter than one
// frame returns (0, nil).
package vorbis
