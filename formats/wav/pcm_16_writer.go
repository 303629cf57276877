// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// riffHeader is the canonical 44-byte layout for a single-data-chunk PCM
// WAV file, written little-endian in one shot.
type riffHeader struct {
	RiffID     [4]byte
	RiffSize   uint32
	WaveID     [4]byte
	FmtID      [4]byte
	FmtSize    uint32
	AudioFmt   uint16
	NumChans   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	BitDepth   uint16
	DataID     [4]byte
	DataSize   uint32
}

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
//
// It takes a plain io.Writer: the header is computed up front from the
// sample count, so no seeking is required.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		numChans = 1
		bitDepth = 16
	)

	dataSize := uint32(len(samples) * 2)

	hdr := riffHeader{
		RiffID:     [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:   36 + dataSize,
		WaveID:     [4]byte{'W', 'A', 'V', 'E'},
		FmtID:      [4]byte{'f', 'm', 't', ' '},
		FmtSize:    16,
		AudioFmt:   1, // PCM
		NumChans:   numChans,
		SampleRate: uint32(sampleRate),
		ByteRate:   uint32(sampleRate * numChans * bitDepth / 8),
		BlockAlign: numChans * bitDepth / 8,
		BitDepth:   bitDepth,
		DataID:     [4]byte{'d', 'a', 't', 'a'},
		DataSize:   dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Stream the sample data in bounded chunks.
	const chunkFrames = 4096

	buf := make([]byte, min(len(samples), chunkFrames)*2)

	for start := 0; start < len(samples); start += chunkFrames {
		end := min(start+chunkFrames, len(samples))

		n := 0
		for _, s := range samples[start:end] {
			binary.LittleEndian.PutUint16(buf[n:], uint16(s))
			n += 2
		}

		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
