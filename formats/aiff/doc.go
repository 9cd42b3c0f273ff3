// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// # Decoding
//
//	file, _ := os.Open("speech.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := audio.ReadAll(src)
//
// Integer PCM at 16, 24 and 32 bits is accepted. AIFF-C (compressed) is not.
//
// # Encoding
//
//	file, _ := os.Create("noisy.aiff")
//	err := aiff.Encoder{}.Encode(file, 44100, samples)
//
// The encoder writes mono PCM; values outside [-1.0, 1.0] are clamped.
//
// # AIFF vs. WAV
//
// AIFF stores big-endian samples and an 80-bit float sample rate. Both are
// uncompressed, so a mix saved as either format holds the same data.
package aiff
