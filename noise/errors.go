// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid noise mix input")

var (
	ErrEmptySignal   = fmt.Errorf("%w: empty signal", ErrInvalidInput)
	ErrSilentNoise   = fmt.Errorf("%w: noise has zero energy", ErrInvalidInput)
	ErrNoiseTooShort = fmt.Errorf("%w: noise must be longer than the mix window", ErrInvalidInput)
	ErrNoSaver       = fmt.Errorf("%w: output path set without a saver", ErrInvalidInput)
)
