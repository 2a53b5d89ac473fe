package script

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Builder accumulates script bytes. Push methods return the builder for
// chaining; the first error is kept and reported by Seal.
//
//	s, err := script.NewBuilder().
//		PushOpcode(script.OpHash160).
//		PushOpcode(script.OpData20).
//		PushSlice(hash).
//		PushOpcode(script.OpEqual).
//		Seal()
type Builder struct {
	buf    []byte
	err    error
	sealed bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, 0, 64)}
}

// PushOpcode appends a single opcode byte.
func (b *Builder) PushOpcode(op Opcode) *Builder {
	if !b.writable() {
		return b
	}
	b.buf = append(b.buf, byte(op))
	return b
}

// PushInt appends the single-byte opcode for n: OP_0 for 0, OP_1NEGATE for -1
// and OP_1..OP_16 for 1..16. Other values fail with ErrUnsupportedPushInt.
func (b *Builder) PushInt(n int64) *Builder {
	switch {
	case n == 0:
		return b.PushOpcode(Op0)
	case n == -1:
		return b.PushOpcode(Op1Negate)
	case n >= 1 && n <= 16:
		return b.PushOpcode(Op1 + Opcode(n-1))
	}
	if b.writable() {
		b.err = fmt.Errorf("%w: %d", ErrUnsupportedPushInt, n)
	}
	return b
}

// PushSlice appends data as-is, without a length prefix. The caller is
// responsible for pushing the matching length opcode first.
func (b *Builder) PushSlice(data []byte) *Builder {
	if !b.writable() {
		return b
	}
	b.buf = append(b.buf, data...)
	return b
}

// PushData appends data using the minimal push encoding: single bytes that
// match a small integer become OP_1NEGATE/OP_1..OP_16, everything else goes
// behind the shortest push opcode able to carry it.
func (b *Builder) PushData(data []byte) *Builder {
	if !b.writable() {
		return b
	}

	n := len(data)
	if n == 1 {
		switch v := data[0]; {
		case v == 0x81:
			return b.PushOpcode(Op1Negate)
		case v >= 1 && v <= 16:
			return b.PushOpcode(Op1 + Opcode(v-1))
		}
	}

	switch {
	case n <= int(OpData75):
		b.buf = append(b.buf, byte(n))
	case n < minPushData2Len:
		b.buf = append(b.buf, byte(OpPushData1), byte(n))
	case n < minPushData4Len:
		b.buf = binary.LittleEndian.AppendUint16(append(b.buf, byte(OpPushData2)), uint16(n))
	case uint64(n) <= math.MaxUint32:
		b.buf = binary.LittleEndian.AppendUint32(append(b.buf, byte(OpPushData4)), uint32(n))
	default:
		b.err = fmt.Errorf("%w: %d bytes", ErrDataTooLarge, n)
		return b
	}
	b.buf = append(b.buf, data...)
	return b
}

// Seal finalizes the builder and returns the script. The builder cannot be
// used afterwards.
func (b *Builder) Seal() (Script, error) {
	if b.sealed {
		return Script{}, ErrBuilderSealed
	}
	b.sealed = true
	if b.err != nil {
		return Script{}, b.err
	}
	s := Script{b: b.buf}
	b.buf = nil
	return s, nil
}

func (b *Builder) writable() bool {
	if b.sealed {
		if b.err == nil {
			b.err = ErrBuilderSealed
		}
		return false
	}
	return b.err == nil
}
