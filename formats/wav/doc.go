// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Supported Formats
//
// Decoding accepts integer PCM at 16, 24 or 32 bits, any channel count and
// any sample rate. Encoding writes mono integer PCM, 16-bit unless
// Encoder.BitDepth says otherwise.
//
// # Decoding
//
//	file, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := audio.ReadAll(src)
//
// Samples come out as float64 in [-1.0, 1.0], interleaved by channel.
//
// # Encoding
//
//	file, _ := os.Create("noisy.wav")
//	err := wav.Encoder{}.Encode(file, 44100, samples)
//
// Values outside [-1.0, 1.0] are clamped before quantization.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: floating point or compressed WAV
//   - ErrUnsupportedBitDepth: 8-bit or unusual depths
//   - ErrInvalidSampleRate: Encode called with a non-positive rate
package wav
