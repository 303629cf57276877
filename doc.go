// SPDX-License-Identifier: EPL-2.0

// Package wavefile is an audio file toolkit built around a scalar
// resampling engine.
//
// The numeric core lives in the interp subpackage: reconstruction kernels
// (point, linear, cubic Hermite, windowed-sinc/Lanczos) combined with
// boundary policies (clamp, periodic, mirror) that evaluate a buffer at
// fractional indices. Everything else is plumbing around it.
//
// # Buffer resampling
//
// Resample runs one engine pass over a float64 buffer:
//
//	out, err := wavefile.Resample(samples, 2048, interp.Options{
//	    Method: "lanczos",
//	    LanczosFilterSize: 3,
//	})
//
// # File pipelines
//
// Format decoders in formats/{wav,mp3,vorbis,aiff} produce audio.Source
// streams that chain through the audio package:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	pcm16, rate, _ := wavefile.ResampleToMono16(src, 8000, 4096)
//	wav.WriteWAV16(out, rate, pcm16)
//
// Samples are float32 in [-1, 1] throughout the streaming layer; the
// engine itself works in float64.
package wavefile
