// SPDX-License-Identifier: EPL-2.0

// Package audexp bundles the utilities used to run audio degradation
// experiments for speech recognition.
//
// Three independent tools live in their own packages:
//
//   - transcode: compress audio through a codec and decode it back, at
//     a sweep of bitrates, by driving ffmpeg.
//   - noise: add background noise to a clean recording at a target
//     signal-to-noise ratio.
//   - wer: score a transcript against its reference by word error rate.
//
// This package wires them to the file formats under formats/ and offers
// one-call helpers for the common path:
//
//	speech, rate, err := audexp.LoadMono("clean/p225_001.wav", 16000)
//	babble, _, err := audexp.LoadMono("noise/cafe.ogg", rate)
//
//	noisy, err := audexp.AddNoise(speech, babble, noise.Options{
//		SNR:        5,
//		SampleRate: rate,
//		Output:     "noisy/p225_001.wav",
//		Rand:       noise.NewRand(42),
//	})
//
//	score, err := audexp.WER("the cat sat", transcript)
//
// # Supported Formats
//
// Decoding: WAV and AIFF (16, 24 and 32-bit integer PCM), MP3 and
// Ogg Vorbis. Encoding: WAV and AIFF, 16-bit by default. Anything else,
// including MP3 and Opus output, goes through transcode.
//
// # Audio Processing
//
// Samples are float64 in [-1, 1] throughout. The audio subpackage holds
// the streaming Source interface, a channel downmixer and a cubic
// resampler that LoadMono chains together.
package audexp
