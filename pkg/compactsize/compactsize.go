// Package compactsize implements the variable-length unsigned integer encoding
// used for counts and lengths in the Bitcoin wire format.
package compactsize

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	prefix16 = 0xfd
	prefix32 = 0xfe
	prefix64 = 0xff
)

// MaxSize is the largest encoded size of a compact-size integer.
const MaxSize = 9

// ErrTruncated is returned when the input ends before the integer does.
var ErrTruncated = errors.New("compact size truncated")

// Decode reads one compact-size integer from the front of b and returns its
// value together with the number of bytes consumed. Non-minimal encodings are
// accepted.
func Decode(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}

	width := payloadWidth(b[0])
	if len(b) < 1+width {
		return 0, 0, fmt.Errorf("%w: prefix %#02x needs %d bytes, have %d", ErrTruncated, b[0], 1+width, len(b))
	}

	body := b[1 : 1+width]
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(body)), 3, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(body)), 5, nil
	case 8:
		return binary.LittleEndian.Uint64(body), 9, nil
	default:
		return uint64(b[0]), 1, nil
	}
}

// Read reads one compact-size integer from r.
func Read(r io.Reader) (uint64, error) {
	var buf [MaxSize]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, readErr(err)
	}

	width := payloadWidth(buf[0])
	if width == 0 {
		return uint64(buf[0]), nil
	}
	if _, err := io.ReadFull(r, buf[1:1+width]); err != nil {
		return 0, readErr(err)
	}
	v, _, err := Decode(buf[:1+width])
	return v, err
}

// Size returns the number of bytes Encode uses for v.
func Size(v uint64) int {
	switch {
	case v < prefix16:
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Encode returns the minimal encoding of v.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Size(v)), v)
}

// Append appends the minimal encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	switch Size(v) {
	case 1:
		return append(dst, byte(v))
	case 3:
		return binary.LittleEndian.AppendUint16(append(dst, prefix16), uint16(v))
	case 5:
		return binary.LittleEndian.AppendUint32(append(dst, prefix32), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, prefix64), v)
	}
}

func payloadWidth(prefix byte) int {
	switch prefix {
	case prefix16:
		return 2
	case prefix32:
		return 4
	case prefix64:
		return 8
	default:
		return 0
	}
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}
