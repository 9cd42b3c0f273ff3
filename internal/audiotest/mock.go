// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates a deterministic waveform and satisfies audio.Source
// without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	closed     bool
	waveform   func(frame, channel int) float64
}

// NewMockSource returns a source of frames frames computed by waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 {
		return value
	})
}

// NewSineSource produces the same sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float64 {
		return math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate))
	})
}

// NewSliceSource replays interleaved samples.
func NewSliceSource(sampleRate, channels int, samples []float64) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) float64 {
		return samples[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.pos = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
