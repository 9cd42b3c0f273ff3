// SPDX-License-Identifier: EPL-2.0

package transcode_test

import (
	"fmt"

	"github.com/ik5/audexp/transcode"
)

func ExampleJob_Pair() {
	job := transcode.Job{
		Codec: "libopus",
		From:  "wav",
		To:    "opus",
	}

	pair := job.Pair("corpus/clip.wav", 24)
	fmt.Println(pair.Encoded)
	fmt.Println(pair.Decoded)
	// Output:
	// audio/opus/clip+24kbps.opus
	// audio/opus/clip+24kbps.wav
}
