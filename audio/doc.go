// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level building blocks shared by the
// experiment utilities.
//
// It contains:
//   - Source, Decoder and Encoder interfaces
//   - Registry, which maps file extensions to codecs and opens or saves files
//   - MonoMixer for channel downmixing
//   - Resample for sample rate conversion of whole buffers
//
// # Sample Format
//
// Samples are float64 values in [-1.0, 1.0]. Multi-channel audio is
// interleaved; a frame holds one sample per channel.
//
// # Loading a File
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//
//	src, err := registry.Open("speech.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	mono, err := audio.ReadAll(audio.NewMonoMixer(src))
//
// # Resampling
//
// Resample works on complete interleaved buffers using cubic interpolation.
// Downsampling runs a one-pole low-pass over the input first:
//
//	out, err := audio.Resample(mono, 1, 44100, 16000)
//
// # Error Handling
//
// Sources return io.EOF when the stream is exhausted. ReadAll hides that
// and only reports real failures.
package audio
