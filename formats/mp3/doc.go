// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source streams using
// github.com/hajimehoshi/go-mp3. Output is always stereo.
package mp3
