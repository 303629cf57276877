// SPDX-License-Identifier: EPL-2.0

package interp

import (
	"fmt"
	"math"
)

// Interpolator holds the resolved resampling configuration: the selected
// kernel and boundary policy plus the scalar parameters derived from them.
// It is immutable once constructed and safe for concurrent use.
type Interpolator struct {
	sourceLength int
	targetLength int

	method Method
	clip   Clip

	scaleFactor   float64
	tangentFactor float64
	filterSize    int
	window        WindowFunc
}

// New resolves opts against sourceLength and targetLength.
//
// It fails with ErrInvalidConfiguration when sourceLength or targetLength
// is below 1, or when the lanczos method is requested without a positive
// LanczosFilterSize. All other malformed options degrade to defaults
// rather than erroring.
func New(sourceLength, targetLength int, opts Options) (*Interpolator, error) {
	if sourceLength < 1 {
		return nil, fmt.Errorf("%w: source length %d, must be >= 1", ErrInvalidConfiguration, sourceLength)
	}
	if targetLength < 1 {
		return nil, fmt.Errorf("%w: target length %d, must be >= 1", ErrInvalidConfiguration, targetLength)
	}

	method := ParseMethod(opts.Method)
	clip := ParseClip(opts.Clip)

	filterSize := opts.SincFilterSize
	if filterSize < 1 {
		filterSize = 1
	}

	window := opts.SincWindow
	if window == nil {
		window = GaussianWindow
	}

	if method == Lanczos {
		if opts.LanczosFilterSize < 1 {
			return nil, fmt.Errorf("%w: lanczos filter size %d, must be >= 1", ErrInvalidConfiguration, opts.LanczosFilterSize)
		}
		// The kernel support must match the window's zero crossings.
		filterSize = opts.LanczosFilterSize
		window = LanczosWindow(filterSize)
	}

	tension := opts.Tension
	if tension < 0 {
		tension = 0
	} else if tension > 1 {
		tension = 1
	}

	// A periodic buffer of n samples covers n intervals per repetition;
	// clamp and mirror span n-1 intervals between fixed endpoints.
	scale := float64(sourceLength-1) / float64(targetLength)
	if clip == Periodic {
		scale = float64(sourceLength) / float64(targetLength)
	}

	return &Interpolator{
		sourceLength:  sourceLength,
		targetLength:  targetLength,
		method:        method,
		clip:          clip,
		scaleFactor:   scale,
		tangentFactor: 1 - tension,
		filterSize:    filterSize,
		window:        window,
	}, nil
}

// SourceLength reports the configured input buffer length.
func (ip *Interpolator) SourceLength() int { return ip.sourceLength }

// TargetLength reports the configured output length.
func (ip *Interpolator) TargetLength() int { return ip.targetLength }

// Method reports the selected reconstruction kernel.
func (ip *Interpolator) Method() Method { return ip.method }

// Clip reports the selected boundary policy.
func (ip *Interpolator) Clip() Clip { return ip.clip }

// Evaluate reconstructs the signal at output index t. samples must have
// length SourceLength. The documented domain for t is [0, TargetLength);
// values outside it still produce a deterministic result since the
// underlying math is continuous and every fetch is boundary-mapped.
func (ip *Interpolator) Evaluate(t float64, samples []float64) float64 {
	u := ip.scaleFactor * t

	switch ip.method {
	case Point:
		return ip.fetch(samples, int(math.Round(u)))
	case Linear:
		return ip.linear(u, samples)
	case Cubic:
		return ip.cubic(u, samples)
	default:
		return ip.windowedSinc(u, samples)
	}
}

// Resample evaluates every output index in [0, TargetLength) and returns
// the reconstructed buffer.
func (ip *Interpolator) Resample(samples []float64) []float64 {
	dst := make([]float64, ip.targetLength)
	ip.ResampleInto(dst, samples)

	return dst
}

// ResampleInto fills dst with up to TargetLength reconstructed samples,
// starting at output index 0, and returns the number written. Output
// indices are independent, so callers may instead shard Evaluate calls
// across goroutines.
func (ip *Interpolator) ResampleInto(dst, samples []float64) int {
	n := min(len(dst), ip.targetLength)
	for i := range n {
		dst[i] = ip.Evaluate(float64(i), samples)
	}

	return n
}

// fetch returns samples[t], boundary-mapping t when it falls outside
// [0, sourceLength). All kernels fetch through here; none index raw.
func (ip *Interpolator) fetch(samples []float64, t int) float64 {
	if t >= 0 && t < ip.sourceLength {
		return samples[t]
	}

	switch ip.clip {
	case Periodic:
		return samples[periodicIndex(t, ip.sourceLength)]
	case Mirror:
		return samples[mirrorIndex(t, ip.sourceLength)]
	default:
		return samples[clampIndex(t, ip.sourceLength)]
	}
}

func (ip *Interpolator) linear(u float64, samples []float64) float64 {
	k := int(math.Floor(u))
	f := u - float64(k)

	return (1-f)*ip.fetch(samples, k) + f*ip.fetch(samples, k+1)
}

// cubic evaluates a Hermite spline between the bracketing samples. The
// tangent at source index j is the centered difference
// (fetch(j+1) - fetch(j-1)) / 2 scaled by the tangent factor, so tension 1
// degenerates to a smoothstep blend of the two bracketing samples.
func (ip *Interpolator) cubic(u float64, samples []float64) float64 {
	k := int(math.Floor(u))
	f := u - float64(k)

	p0 := ip.fetch(samples, k)
	p1 := ip.fetch(samples, k+1)
	m0 := ip.tangentFactor * (p1 - ip.fetch(samples, k-1)) / 2
	m1 := ip.tangentFactor * (ip.fetch(samples, k+2) - p0) / 2

	f2 := f * f
	f3 := f2 * f

	h00 := 2*f3 - 3*f2 + 1
	h10 := f3 - 2*f2 + f
	h01 := -2*f3 + 3*f2
	h11 := f3 - f2

	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

// windowedSinc sums kernel(u-n)*fetch(n) for every integer n within
// filterSize samples of floor(u), where kernel(x) = sinc(x)*window(x).
func (ip *Interpolator) windowedSinc(u float64, samples []float64) float64 {
	k := int(math.Floor(u))

	var sum float64
	for n := k - ip.filterSize + 1; n <= k+ip.filterSize; n++ {
		x := u - float64(n)
		sum += sinc(x) * ip.window(x) * ip.fetch(samples, n)
	}

	return sum
}
