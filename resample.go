// SPDX-License-Identifier: EPL-2.0

package wavefile

import (
	"fmt"
	"io"

	"github.com/kmturley/wavefile/audio"
	"github.com/kmturley/wavefile/interp"
	"github.com/kmturley/wavefile/utils"
)

// Resample reconstructs samples at targetLength points using the interp
// engine. See interp.Options for the available kernels and boundary
// policies; the zero value selects windowed-sinc with clamped boundaries.
func Resample(samples []float64, targetLength int, opts interp.Options) ([]float64, error) {
	ip, err := interp.New(len(samples), targetLength, opts)
	if err != nil {
		return nil, err
	}

	return ip.Resample(samples), nil
}

// ResampleToMono16 resamples src to targetRate, mixes it down to mono, and
// collects the result as 16-bit PCM.
//
// bufferSize sets the read granularity of the pipeline (4096 is a sensible
// default). The returned rate always equals targetRate.
//
// For more control over the pipeline, compose audio.NewResamplerOptions
// and audio.NewMonoMixer directly.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
