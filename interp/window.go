// SPDX-License-Identifier: EPL-2.0

package interp

import "math"

// WindowFunc weights the sinc kernel at offset x from the evaluation point.
type WindowFunc func(x float64) float64

// GaussianWindow is the default sinc window, exp(-x²).
func GaussianWindow(x float64) float64 {
	return math.Exp(-x * x)
}

// LanczosWindow returns the Lanczos window of the given size, sinc(x/size).
// Combined with the outer sinc factor it yields a standard Lanczos-a kernel
// with a = size.
func LanczosWindow(size int) WindowFunc {
	a := float64(size)

	return func(x float64) float64 {
		return sinc(x / a)
	}
}

// sinc is the unnormalized cardinal sine, sin(πx)/(πx) with sinc(0) = 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
