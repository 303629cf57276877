package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/kmturley/wavefile/interp"
)

// drainSource collects all samples a Source produces.
func drainSource(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var samples []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			return samples
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	resampler := NewResampler(src, 8000)

	if resampler.SampleRate() != 8000 {
		t.Errorf("Resampler.SampleRate() = %d, want 8000", resampler.SampleRate())
	}

	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}
}

func TestResampler_SameRateConstant(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	resampler := NewResampler(src, 8000)

	samples := drainSource(t, resampler, 64)

	if len(samples) != 100 {
		t.Fatalf("got %d samples, want 100", len(samples))
	}

	// Cubic reconstruction of a constant buffer is exact.
	for i, s := range samples {
		if s != 0.5 {
			t.Errorf("samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestResampler_Downsampling(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 44100, 440.0)
	resampler := NewResampler(src, 8000)

	samples := drainSource(t, resampler, 1024)

	// Output length is derived from the exact rate ratio.
	if len(samples) != 8000 {
		t.Errorf("resampled %d samples, want 8000", len(samples))
	}

	for i, s := range samples {
		if s < -1.5 || s > 1.5 {
			t.Errorf("samples[%d] = %v, outside reasonable range", i, s)
		}
	}
}

func TestResampler_Upsampling(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 8000, 440.0)
	resampler := NewResampler(src, 44100)

	samples := drainSource(t, resampler, 1024)

	if len(samples) != 44100 {
		t.Errorf("resampled %d samples, want 44100", len(samples))
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, 1000, func(_, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})

	resampler := NewResampler(src, 8000)

	if resampler.Channels() != 2 {
		t.Fatalf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}

	samples := drainSource(t, resampler, 128)

	if len(samples)%2 != 0 {
		t.Fatalf("got %d samples, want an even count", len(samples))
	}

	for f := 0; f < len(samples)/2; f++ {
		if l := samples[2*f]; l != 0.3 {
			t.Errorf("frame %d left = %v, want 0.3", f, l)
		}
		if r := samples[2*f+1]; r != 0.7 {
			t.Errorf("frame %d right = %v, want 0.7", f, r)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	resampler := NewResampler(src, 8000)

	buf := make([]float32, 5) // not a multiple of 2
	_, err := resampler.ReadSamples(buf)

	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 0)
	resampler := NewResampler(src, 8000)

	buf := make([]float32, 16)
	n, err := resampler.ReadSamples(buf)

	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}

	// A second read keeps reporting EOF.
	n, err = resampler.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResamplerOptions_LinearRamp(t *testing.T) {
	t.Parallel()

	// A linear ramp resampled with the linear kernel stays a ramp.
	src := newRampSource(16000, 1, 1600)
	resampler := NewResamplerOptions(src, 8000, interp.Options{Method: "linear"})

	samples := drainSource(t, resampler, 256)

	if len(samples) != 800 {
		t.Fatalf("got %d samples, want 800", len(samples))
	}

	// Scale factor is (1600-1)/800; output i sits at ramp position
	// u = scale*i, value u/(total-1).
	scale := float64(1599) / 800
	for i, s := range samples {
		want := scale * float64(i) / 1599
		if math.Abs(float64(s)-want) > 1e-4 {
			t.Errorf("samples[%d] = %v, want ≈%v", i, s, want)
		}
	}
}

func TestResamplerOptions_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	src := newSilentSource(16000, 1, 100)
	resampler := NewResamplerOptions(src, 8000, interp.Options{Method: "lanczos"})

	buf := make([]float32, 16)
	_, err := resampler.ReadSamples(buf)

	if !errors.Is(err, interp.ErrInvalidConfiguration) {
		t.Errorf("ReadSamples() error = %v, want interp.ErrInvalidConfiguration", err)
	}
}

// BenchmarkResampler_Downsample benchmarks downsampling 44.1kHz -> 8kHz
func BenchmarkResampler_Downsample(b *testing.B) {
	src := newSineSource(44100, 2, 44100, 440.0)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		resampler := NewResampler(src, 8000)
		for {
			_, err := resampler.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

// BenchmarkResampler_Upsample benchmarks upsampling 8kHz -> 44.1kHz
func BenchmarkResampler_Upsample(b *testing.B) {
	src := newSineSource(8000, 2, 8000, 440.0)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		resampler := NewResampler(src, 44100)
		for {
			_, err := resampler.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
