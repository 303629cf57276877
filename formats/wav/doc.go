// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into audio.Source streams and writes mono
// 16-bit PCM WAV files.
//
// Decoding is built on github.com/go-audio/wav and handles the PCM bit
// depths that library supports, normalizing samples to [-1, 1]. The writer
// emits the canonical 44-byte single-data-chunk layout and works on any
// io.Writer.
package wav
