// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/kmturley/wavefile/interp"
)

// Resampler converts a Source to a target sample rate. Channel count is
// preserved.
//
// On the first read it drains the source, de-interleaves the channels,
// derives the output length from the rate ratio, and reconstructs each
// channel with an interp.Interpolator. The materialized result is then
// served through ReadSamples like any other Source.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	opts     interp.Options

	out    []float32 // interleaved resampled output
	offset int
	err    error
	primed bool
}

// NewResampler resamples src to dstRate with cubic reconstruction and
// clamped boundaries, a good default for audio material.
func NewResampler(src Source, dstRate int) *Resampler {
	return NewResamplerOptions(src, dstRate, interp.Options{Method: "cubic"})
}

// NewResamplerOptions exposes the full engine option set: kernel, boundary
// policy, tension and sinc window configuration.
func NewResamplerOptions(src Source, dstRate int, opts interp.Options) *Resampler {
	return &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: src.Channels(),
		opts:     opts,
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the target rate. dst length must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if err := r.prime(); err != nil {
		return 0, err
	}

	if r.offset >= len(r.out) {
		return 0, io.EOF
	}

	n := copy(dst, r.out[r.offset:])
	r.offset += n

	if r.offset >= len(r.out) {
		return n, io.EOF
	}

	return n, nil
}

// prime drains the source and runs one interpolation pass per channel.
func (r *Resampler) prime() error {
	if r.primed {
		return r.err
	}
	r.primed = true

	chans, err := r.drain()
	if err != nil {
		r.err = err
		return r.err
	}

	sourceLength := len(chans[0])
	if sourceLength == 0 {
		r.err = io.EOF
		return r.err
	}

	targetLength := int(float64(sourceLength) * float64(r.dstRate) / float64(r.src.SampleRate()))
	if targetLength < 1 {
		targetLength = 1
	}

	ip, err := interp.New(sourceLength, targetLength, r.opts)
	if err != nil {
		r.err = fmt.Errorf("%w", err)
		return r.err
	}

	r.out = make([]float32, targetLength*r.channels)
	dst := make([]float64, targetLength)

	for c, samples := range chans {
		ip.ResampleInto(dst, samples)
		for i, v := range dst {
			r.out[i*r.channels+c] = float32(v)
		}
	}

	return nil
}

// drain reads the source to EOF and splits the interleaved stream into one
// float64 buffer per channel. Channels shorter by a ragged tail frame are
// padded with their last sample so every buffer has equal length.
func (r *Resampler) drain() ([][]float64, error) {
	chans := make([][]float64, r.channels)
	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := r.src.ReadSamples(buf)
		for i := range n {
			c := total % r.channels
			chans[c] = append(chans[c], float64(buf[i]))
			total++
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	longest := len(chans[0])
	for c := 1; c < r.channels; c++ {
		for len(chans[c]) < longest {
			if len(chans[c]) == 0 {
				chans[c] = append(chans[c], 0)
				continue
			}
			chans[c] = append(chans[c], chans[c][len(chans[c])-1])
		}
	}

	return chans, nil
}
