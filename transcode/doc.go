// SPDX-License-Identifier: EPL-2.0

// Package transcode runs compress-then-decompress sweeps through an
// external codec tool, ffmpeg by default.
//
// For each input file and bitrate a Batch makes two calls:
//
//	ffmpeg -i <input> -c:a <codec> -b:a <bitrate>k <base>.<to>
//	ffmpeg -i <base>.<to> -vn <base>.<from>
//
// where <base> is <root>/<to><override>/<name>+<bitrate>kbps. The decoded
// file sits next to the compressed one and carries the codec's artefacts,
// which is what degradation experiments listen to.
//
// Existing outputs are skipped under SkipExisting, so a sweep can be
// re-run after an interruption. Overwrite re-encodes everything and adds
// -y to both calls.
//
// Tool invocation goes through the Runner interface. ExecRunner is the
// os/exec implementation; tests substitute a fake.
package transcode
