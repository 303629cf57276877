// SPDX-License-Identifier: EPL-2.0

// Package interp implements scalar resampling of one-dimensional sample
// buffers by evaluating a continuous reconstruction of the signal at
// fractional indices.
//
// An Interpolator is configured once with a source length, a target length
// and an Options record, and is immutable afterwards:
//
//	ip, err := interp.New(len(samples), 1024, interp.Options{
//	    Method: "cubic",
//	    Clip:   "mirror",
//	})
//	if err != nil {
//	    return err
//	}
//	out := ip.Resample(samples)
//
// # Kernels
//
// Four reconstruction kernels are available:
//   - point: nearest-neighbor (zero-order hold)
//   - linear: two-point blend between the bracketing samples
//   - cubic: four-point Hermite spline with tension-damped
//     centered-difference tangents
//   - sinc/lanczos: windowed-sinc reconstruction over a configurable
//     support window
//
// The default is sinc with a Gaussian window of half-width 1. Unrecognized
// method names fall back to the default; this permissiveness is deliberate,
// callers are expected to validate option strings upstream if they care.
//
// # Boundary policies
//
// Sample fetches outside [0, sourceLength) are mapped back into range by
// the configured clip policy:
//   - clamp: saturate to the nearest edge sample (default)
//   - periodic: wrap, treating the buffer as a cyclic signal
//   - mirror: reflect at both edges without duplicating the edge samples
//
// The periodic policy also changes the output-to-source scale factor: a
// cyclic buffer of n samples covers n intervals per period, where a clamped
// buffer spans n-1 intervals between fixed endpoints.
//
// # Purity and concurrency
//
// Evaluate is a pure function of the configuration and the sample buffer.
// The engine never mutates the buffer and keeps no state across calls, so
// any number of goroutines may evaluate against the same Interpolator and
// buffer without locking.
package interp
