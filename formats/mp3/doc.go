// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo, so the returned audio.Source
// reports two channels even for mono files; downmix with
// audio.NewMonoMixer when a single channel is needed. Samples are the
// decoder's 16-bit PCM scaled to float64 in [-1, 1]. Reads always return
// whole stereo frames.
//
// There is no MP3 encoder here. Producing MP3 is the job of the external
// codec tool driven by the transcode package.
package mp3
