// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("no codec registered for format")
	ErrNoProgress     = errors.New("source stopped producing samples without EOF")
	ErrInvalidRate    = errors.New("sample rate must be positive")
)
