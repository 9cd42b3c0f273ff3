// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/ik5/audexp/transcode"
	"github.com/ik5/audexp/wer"
)

// PrintTranscodeReport lists every pair of a batch and a summary line.
func PrintTranscodeReport(w io.Writer, r transcode.Report) {
	for _, p := range r.Converted {
		fmt.Fprintf(w, "%s %s @ %dkbps -> %s\n", OKStyle.Render("done"), p.Input, p.Bitrate, p.Decoded)
	}
	for _, p := range r.Skipped {
		fmt.Fprintf(w, "%s %s @ %dkbps (%s exists)\n", SkipStyle.Render("skip"), p.Input, p.Bitrate, p.Encoded)
	}
	for _, f := range r.Failed {
		fmt.Fprintf(w, "%s %s @ %dkbps: %v\n", FailStyle.Render("fail"), f.Input, f.Bitrate, f.Err)
	}

	fmt.Fprintf(w, "\n%s converted, %s skipped, %s failed\n",
		OKStyle.Render(fmt.Sprint(len(r.Converted))),
		SkipStyle.Render(fmt.Sprint(len(r.Skipped))),
		FailStyle.Render(fmt.Sprint(len(r.Failed))),
	)
}

// PrintMix summarises a noise mix.
func PrintMix(w io.Writer, output string, samples, sampleRate int, requested, achieved float64) {
	if output != "" {
		PrintField(w, "Output:", output)
	}
	PrintField(w, "Samples:", samples)
	PrintField(w, "Duration:", fmt.Sprintf("%.2fs", float64(samples)/float64(sampleRate)))
	PrintField(w, "Requested SNR:", fmt.Sprintf("%.2f dB", requested))
	PrintField(w, "Achieved SNR:", fmt.Sprintf("%.2f dB", achieved))
}

// PrintMeasures prints the word alignment counts and rates.
func PrintMeasures(w io.Writer, m wer.Measures) {
	PrintField(w, "WER:", fmt.Sprintf("%.4f", m.WER))
	PrintField(w, "MER:", fmt.Sprintf("%.4f", m.MER))
	PrintField(w, "WIL:", fmt.Sprintf("%.4f", m.WIL))
	PrintField(w, "WIP:", fmt.Sprintf("%.4f", m.WIP))
	PrintField(w, "Hits:", m.Hits)
	PrintField(w, "Substitutions:", m.Substitutions)
	PrintField(w, "Deletions:", m.Deletions)
	PrintField(w, "Insertions:", m.Insertions)
}
