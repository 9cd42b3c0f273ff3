// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float64 samples in [-1,1].
	// Returns number of values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder writes a mono signal to w at sampleRate.
type Encoder interface {
	Encode(w io.WriteSeeker, sampleRate int, samples []float64) error
}

// Registry maps file extensions (e.g., "wav", "mp3", "ogg") to codecs.
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[normalizeFormat(format)] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[normalizeFormat(format)] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[normalizeFormat(format)]
	return d, ok
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[normalizeFormat(format)]
	return e, ok
}

// Open decodes the file at path with the decoder registered for its
// extension. Closing the returned Source closes the file.
func (r *Registry) Open(path string) (Source, error) {
	dec, ok := r.Get(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Save encodes samples into path with the encoder registered for its
// extension. A partially written file is removed on failure.
func (r *Registry) Save(path string, sampleRate int, samples []float64) error {
	enc, ok := r.GetEncoder(filepath.Ext(path))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = enc.Encode(f, sampleRate, samples)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}

// ReadAll drains src and returns every sample it produced.
func ReadAll(src Source) ([]float64, error) {
	out := make([]float64, 0, src.SampleRate()*src.Channels())
	buf := make([]float64, 4096*max(src.Channels(), 1))

	idle := 0
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n > 0 {
			idle = 0
			continue
		}
		idle++
		if idle >= maxIdleReads {
			return out, ErrNoProgress
		}
	}
}

// maxIdleReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxIdleReads = 64

type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
