// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audexp/audio"
	"github.com/jfreymuth/oggvorbis"
)

// ErrInvalidVorbis wraps any failure to read the Ogg Vorbis headers.
var ErrInvalidVorbis = errors.New("invalid ogg vorbis stream")

// oggReader is the subset of oggvorbis.Reader the source depends on.
// Read returns interleaved values, always a whole number of frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
	buf []float32
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	channels := s.dec.Channels()
	want := len(dst) / channels * channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	s.buf = s.buf[:want]

	n, err := s.dec.Read(s.buf)
	for i, v := range s.buf[:n] {
		dst[i] = float64(v)
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVorbis, err)
	}

	return &source{
		dec: dec,
		buf: make([]float32, 4096),
	}, nil
}
