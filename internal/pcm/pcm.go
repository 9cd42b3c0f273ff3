// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders and encoders to the
// float64 sample model used across the module.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audexp/utils"
)

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source turns a Reader into an audio.Source.
type Source struct {
	dec       Reader
	format    *goaudio.Format
	bitDepth  int
	intBuf    *goaudio.IntBuffer
	exhausted bool
}

func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.exhausted {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	// go-audio reports the end of the data chunk as an empty read, not io.EOF
	if n == 0 || err == io.EOF {
		s.exhausted = true
		return n, io.EOF
	}

	return n, nil
}

// IntBuffer converts mono float samples to a go-audio buffer at bitDepth.
func IntBuffer(samples []float64, sampleRate, bitDepth int) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = utils.FloatToPCM(x, bitDepth)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// ReadSeeker returns r itself when it can seek, otherwise buffers it in memory.
// go-audio decoders require seeking.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
