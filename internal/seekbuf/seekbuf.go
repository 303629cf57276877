// SPDX-License-Identifier: EPL-2.0

// Package seekbuf adapts a plain io.Reader into the io.ReadSeeker the
// go-audio decoders require, buffering the stream in memory when the
// caller's reader cannot seek.
package seekbuf

import (
	"errors"
	"fmt"
	"io"
)

var errNegativePosition = errors.New("seek to negative position")

// ReadSeeker returns r itself when it already seeks, or an in-memory copy
// of the remaining stream otherwise.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}

	return &buffer{data: data}, nil
}

type buffer struct {
	data   []byte
	offset int64
}

func (b *buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)

	return n, nil
}

func (b *buffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.offset + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, errNegativePosition
	}

	b.offset = pos

	return pos, nil
}
