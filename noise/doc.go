// SPDX-License-Identifier: EPL-2.0

// Package noise adds noise to a clean signal at a target signal-to-noise
// ratio.
//
// The noise is scaled by
//
//	mean_square(signal) / (mean_square(noise) * 10^(snr/10))
//
// and a window of it, starting at a uniformly random offset, is added to
// the signal. The window offset comes from the *rand.Rand in Options, so
// a generator built with NewRand reproduces the same mix on every call
// without touching any shared state.
//
// The multiplier is a power ratio applied to amplitudes, so the achieved
// SNR differs from the requested one. SNR measures what a mix achieved.
package noise
