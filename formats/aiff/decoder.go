// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audexp/audio"
	"github.com/ik5/audexp/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, format, bitDepth), nil
}

// Encoder writes mono integer PCM AIFF files. The zero value writes 16-bit.
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

	enc := goaiff.NewEncoder(w, sampleRate, bitDepth, 1)
	if err := enc.Write(pcm.IntBuffer(samples, sampleRate, bitDepth)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
