// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audexp/internal/pcm"
)

// Encoder writes mono integer PCM WAV files. The zero value writes 16-bit.
type Encoder struct {
	BitDepth int
}

func (e Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	bitDepth := e.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	if err := enc.Write(pcm.IntBuffer(samples, sampleRate, bitDepth)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
