// SPDX-License-Identifier: EPL-2.0

package interp

// The clip mappers take an arbitrary integer source index and a buffer
// length n >= 1 and return an index in [0, n). They are total over that
// domain; behavior for n < 1 is undefined and guarded at construction.

// clampIndex saturates t to [0, n-1].
func clampIndex(t, n int) int {
	if t < 0 {
		return 0
	}
	if t >= n {
		return n - 1
	}

	return t
}

// periodicIndex wraps t modulo n, mapping negatives into [0, n).
func periodicIndex(t, n int) int {
	return ((t % n) + n) % n
}

// mirrorIndex reflects t around both edges with period 2(n-1). Edge
// samples are not duplicated across the reflection.
func mirrorIndex(t, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	t = ((t % period) + period) % period
	if t > n-1 {
		t = period - t
	}

	return t
}
