// SPDX-License-Identifier: EPL-2.0

// Package utils holds the scalar PCM conversions shared by the format
// decoders and the processing pipeline.
package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
// Out-of-range inputs are clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on the positive side to avoid int16 overflow at x = 1.
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to the normalized [-1, 1)
// range used throughout the pipeline.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCMScale returns the normalization divisor for integer PCM samples of
// the given bit depth. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
