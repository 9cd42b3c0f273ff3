// SPDX-License-Identifier: EPL-2.0

package wer

import "errors"

var (
	ErrEmptyReference = errors.New("reference has no words after normalization")
	ErrLengthMismatch = errors.New("reference and hypothesis lists differ in length")
)
