// SPDX-License-Identifier: EPL-2.0

package interp

// Method selects the reconstruction kernel.
type Method int

const (
	// Sinc is windowed-sinc reconstruction with a Gaussian window. Default.
	Sinc Method = iota
	// Point is nearest-neighbor reconstruction (zero-order hold).
	Point
	// Linear blends the two bracketing samples.
	Linear
	// Cubic is a four-point Hermite spline with centered-difference
	// tangents damped by the tension option.
	Cubic
	// Lanczos is windowed-sinc with a Lanczos window; the window size also
	// bounds the kernel support.
	Lanczos
)

func (m Method) String() string {
	switch m {
	case Point:
		return "point"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	case Lanczos:
		return "lanczos"
	default:
		return "sinc"
	}
}

// ParseMethod maps a method name to its Method. Unrecognized names
// (including "") return Sinc.
func ParseMethod(s string) Method {
	switch s {
	case "point":
		return Point
	case "linear":
		return Linear
	case "cubic":
		return Cubic
	case "lanczos":
		return Lanczos
	default:
		return Sinc
	}
}

// Clip selects how out-of-range source indices map back into the buffer.
type Clip int

const (
	// Clamp saturates to the nearest edge sample. Default.
	Clamp Clip = iota
	// Periodic wraps, treating the buffer as a cyclic signal.
	Periodic
	// Mirror reflects at both edges without duplicating edge samples.
	Mirror
)

func (c Clip) String() string {
	switch c {
	case Periodic:
		return "periodic"
	case Mirror:
		return "mirror"
	default:
		return "clamp"
	}
}

// ParseClip maps a clip-policy name to its Clip. Unrecognized names
// (including "") return Clamp.
func ParseClip(s string) Clip {
	switch s {
	case "periodic":
		return Periodic
	case "mirror":
		return Mirror
	default:
		return Clamp
	}
}

// Options configures an Interpolator. The zero value selects the defaults:
// sinc reconstruction, clamp boundaries, tension 0, Gaussian window of
// half-width 1.
type Options struct {
	// Method names the reconstruction kernel: "point", "linear", "cubic",
	// "sinc" or "lanczos". Anything else falls back to "sinc".
	Method string

	// Clip names the boundary policy: "clamp", "periodic" or "mirror".
	// Anything else falls back to "clamp".
	Clip string

	// Tension in [0,1] damps the cubic kernel's tangents. 0 gives a
	// Catmull-Rom-like spline, 1 flattens the tangents to zero. Values
	// outside [0,1] are clamped.
	Tension float64

	// SincFilterSize is the half-width, in source samples, of the sinc
	// kernel's support. Values below 1 use the default of 1. Ignored by
	// the lanczos method, which takes its size from LanczosFilterSize.
	SincFilterSize int

	// SincWindow weights the sinc kernel. Nil uses the Gaussian window.
	// Ignored by the lanczos method.
	SincWindow WindowFunc

	// LanczosFilterSize sets both the Lanczos window size and the kernel
	// support. Required (>= 1) when Method is "lanczos".
	LanczosFilterSize int
}
