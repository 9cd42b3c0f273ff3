// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audexp/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV around raw sample bytes.
func createWAVFile(sampleRate, channels, bitsPerSample, formatTag int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func int16Bytes(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func encodeToFile(t *testing.T, enc Encoder, sampleRate int, samples []float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := enc.Encode(f, sampleRate, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	return path
}

func decodeAll(t *testing.T, r io.Reader) (audio.Source, []float64) {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	samples, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return src, samples
}

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
	}{
		{"default 16-bit", 0},
		{"24-bit", 24},
		{"32-bit", 32},
	}

	want := []float64{0, 0.5, -0.5, 0.25, -1, 0.999}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := encodeToFile(t, Encoder{BitDepth: tt.bitDepth}, 16000, want)

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			src, got := decodeAll(t, f)
			if src.SampleRate() != 16000 {
				t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
			}
			if src.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", src.Channels())
			}
			if len(got) != len(want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if math.Abs(got[i]-want[i]) > 1e-3 {
					t.Errorf("sample[%d] = %v, want ≈%v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEncoder_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	path := encodeToFile(t, Encoder{}, 8000, []float64{3, -3})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, got := decodeAll(t, f)
	if len(got) != 2 || got[0] < 0.99 || got[1] > -0.99 {
		t.Errorf("decoded %v, want samples clamped to ±1", got)
	}
}

func TestEncoder_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := (Encoder{}).Encode(f, 0, []float64{0}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Encode() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestDecoder_HandcraftedPCM16(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 2, 16, 1, int16Bytes(0, 16384, -16384, -32768))

	src, got := decodeAll(t, bytes.NewReader(data))
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	want := []float64{0, 0.5, -0.5, -1}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, 16, 1, int16Bytes(100, 200, 300))

	// io.MultiReader hides the Seek method of bytes.Reader
	_, got := decodeAll(t, io.MultiReader(bytes.NewReader(data)))
	if len(got) != 3 {
		t.Errorf("decoded %d samples, want 3", len(got))
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not a wav", []byte("NOT A WAV FILE AT ALL, JUST SOME TEXT PADDING"), ErrNotWavFile},
		{"ieee float", createWAVFile(8000, 1, 32, 3, make([]byte, 8)), ErrUnsupportedEncoding},
		{"8-bit", createWAVFile(8000, 1, 8, 1, make([]byte, 4)), ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrUnsupportedEncoding,
		ErrUnsupportedBitDepth,
		ErrInvalidSampleRate,
	}

	seen := make(map[string]bool)
	for _, err := range all {
		if seen[err.Error()] {
			t.Errorf("duplicate error message %q", err.Error())
		}
		seen[err.Error()] = true
	}
}

func BenchmarkDecoder_ReadAll(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := createWAVFile(44100, 1, 16, 1, int16Bytes(samples...))

	b.ReportAllocs()
	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		_, _ = audio.ReadAll(src)
	}
}
