// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader serves 16-bit PCM in chunks of at most chunk bytes, which
// may split a sample across reads.
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	offset     int
	chunk      int
	err        error
}

func newMockReader(rate int, samples []int16) *mockMP3Reader {
	pcm := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(v))
	}
	return &mockMP3Reader{sampleRate: rate, pcm: pcm}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.pcm)-m.offset)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}
	copy(buf, m.pcm[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.pcm) {
		return n, io.EOF
	}
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not an mp3 stream")))
	if !errors.Is(err, ErrInvalidMP3) {
		t.Errorf("Decode() error = %v, want ErrInvalidMP3", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(22050, nil)}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_Conversion(t *testing.T) {
	t.Parallel()

	in := []int16{0, 1, -1, 32767, -32768, 16384, -16384, 0}
	want := []float64{0, 1.0 / 32768, -1.0 / 32768, 32767.0 / 32768, -1, 0.5, -0.5, 0}

	src := &source{dec: newMockReader(44100, in)}
	dst := make([]float64, len(in))

	n, err := src.ReadSamples(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(in) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(in))
	}

	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, []int16{1, 2})}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_OddDestination(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, []int16{1, 2, 3, 4})}

	n, err := src.ReadSamples(make([]float64, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "only whole stereo frames are returned")

	n, err = src.ReadSamples(make([]float64, 1))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_SplitSamples(t *testing.T) {
	t.Parallel()

	in := []int16{100, -200, 300, -400, 500, -600}
	reader := newMockReader(44100, in)
	reader.chunk = 3

	src := &source{dec: reader}
	var got []float64
	dst := make([]float64, 4)

	for range 32 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(in) {
		t.Fatalf("read %d samples, want %d", len(got), len(in))
	}
	for i, v := range in {
		if want := float64(v) / 32768; got[i] != want {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, []int16{1, 2, 3, 4})}
	dst := make([]float64, 16)

	n, err := src.ReadSamples(dst)
	if n != 4 {
		t.Errorf("first ReadSamples() n = %d, want 4", n)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("first ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_DecoderError(t *testing.T) {
	t.Parallel()

	reader := newMockReader(44100, []int16{1})
	reader.err = io.ErrUnexpectedEOF

	src := &source{dec: reader}
	if _, err := src.ReadSamples(make([]float64, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	in := make([]int16, 10000)
	for i := range in {
		in[i] = int16(i % 1000)
	}

	src := &source{dec: newMockReader(44100, in), buf: make([]byte, 16)}
	dst := make([]float64, len(in))

	n, _ := src.ReadSamples(dst)
	if n != len(in) {
		t.Errorf("ReadSamples() n = %d, want %d", n, len(in))
	}
	if cap(src.buf) < len(in)*2 {
		t.Errorf("buffer cap = %d, want >= %d", cap(src.buf), len(in)*2)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	in := make([]int16, 44100*2)
	for i := range in {
		in[i] = int16(i)
	}
	dst := make([]float64, 4096)

	for b.Loop() {
		src := &source{dec: newMockReader(44100, in)}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
