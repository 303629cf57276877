// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source streams using
// github.com/go-audio/aiff. Samples are normalized by source bit depth.
package aiff
