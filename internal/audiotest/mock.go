// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock audio sources for tests in other
// packages. The types implement the audio.Source interface without
// importing it, to keep the dependency direction one-way.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio data.
type MockSource struct {
	sampleRate int
	channels   int
	total      int // frames to generate
	emitted    int // frames generated so far
	waveform   func(frame, channel int) float32
}

// NewMockSource creates a source generating total frames per channel from
// the waveform function.
func NewMockSource(sampleRate, channels, total int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

// NewSilentSource generates all-zero samples.
func NewSilentSource(sampleRate, channels, total int) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 {
		return 0
	})
}

// NewConstantSource generates a fixed sample value.
func NewConstantSource(sampleRate, channels, total int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 {
		return value
	})
}

// NewSineSource generates a sine wave at the given frequency.
func NewSineSource(sampleRate, channels, total int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.emitted = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.total {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.total - m.emitted; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.emitted+f, c)
		}
	}

	m.emitted += frames

	if m.emitted >= m.total {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
