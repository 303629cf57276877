// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming layer around the interp engine.
//
// It owns everything the engine deliberately does not: sample-rate math,
// channel de-interleaving, and decoder plumbing.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement it, so they chain freely.
//
// # Resampling
//
// Resampler buffers its source and reconstructs each channel with the
// interp engine:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// NewResamplerOptions accepts an interp.Options to choose the kernel
// (point, linear, cubic, sinc, lanczos) and boundary policy.
//
// # Channel Mixing
//
// MonoMixer averages multi-channel frames down to mono:
//
//	mono := audio.NewMonoMixer(source)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence. Processing functions
// return io.EOF when the stream is exhausted, possibly alongside a final
// batch of samples.
package audio
