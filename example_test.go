// SPDX-License-Identifier: EPL-2.0

package audexp_test

import (
	"fmt"

	"github.com/ik5/audexp"
	"github.com/ik5/audexp/noise"
)

// Example_experiment mixes noise into a signal and scores a transcript.
func Example_experiment() {
	speech := []float64{1, 1, 1, 1}
	babble := []float64{2, 2, 2, 2, 2, 2}

	noisy, err := audexp.AddNoise(speech, babble, noise.Options{SNR: 0, Rand: noise.NewRand(1)})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(noisy)

	score, err := audexp.WER("the cat sat", "a cat sat mat")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("WER %.4f\n", score)

	// Output:
	// [1.5 1.5 1.5 1.5]
	// WER 0.6667
}
