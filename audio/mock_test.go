package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic audio data for tests.
type mockSource struct {
	sampleRate int
	channels   int
	total      int // frames to generate
	emitted    int // frames generated so far
	waveform   func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, total int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

func newSilentSource(sampleRate, channels, total int) *mockSource {
	return newMockSource(sampleRate, channels, total, func(int, int) float32 {
		return 0
	})
}

func newConstantSource(sampleRate, channels, total int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, total, func(int, int) float32 {
		return value
	})
}

func newSineSource(sampleRate, channels, total int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// newRampSource counts up linearly from 0 to 1 across the stream.
func newRampSource(sampleRate, channels, total int) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, _ int) float32 {
		return float32(frame) / float32(total-1)
	})
}

// Reset rewinds the source so it can be read again.
func (m *mockSource) Reset() { m.emitted = 0 }

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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
