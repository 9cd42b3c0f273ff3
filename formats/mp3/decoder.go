// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audexp/audio"
	"github.com/ik5/audexp/utils"
)

// go-mp3 always emits interleaved stereo, 16-bit little-endian.
const (
	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
)

// ErrInvalidMP3 wraps any failure to parse the first MP3 frame.
var ErrInvalidMP3 = errors.New("invalid mp3 stream")

// mp3Reader is the subset of gomp3.Decoder the source depends on.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	buf  []byte
	rest []byte // partial frame carried to the next read
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// ReadSamples only returns whole frames so downstream mixers stay aligned.
func (s *source) ReadSamples(dst []float64) (int, error) {
	want := len(dst) / channels * channels
	if want == 0 {
		return 0, nil
	}

	need := want * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	carried := copy(s.buf, s.rest)
	s.rest = s.rest[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	usable := n - n%frameBytes
	s.rest = append(s.rest, s.buf[usable:n]...)

	samples := usable / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.PCMToFloat(int(v), 16)
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMP3, err)
	}

	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}, nil
}
