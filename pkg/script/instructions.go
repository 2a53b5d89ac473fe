package script

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/safe"
)

// Instruction is one decoded script element. It is either PushBytes or an
// Opcode; consumers switch on the concrete type.
type Instruction interface {
	isInstruction()
}

// PushBytes is the data carried by a push instruction. OP_0 decodes to an
// empty PushBytes.
type PushBytes []byte

func (PushBytes) isInstruction() {}

type parserState uint8

const (
	parserActive parserState = iota
	parserDead
)

// Instructions is a forward-only parser over script bytes. Any error moves it
// to a terminal dead state: the remaining bytes are discarded and every later
// call to Next reports io.EOF.
type Instructions struct {
	data           []byte
	offset         int
	enforceMinimal bool
	state          parserState
}

// NewInstructions returns a parser over b. With enforceMinimal set, pushes
// that have a shorter encoding fail with ErrNonMinimalPush.
func NewInstructions(b []byte, enforceMinimal bool) *Instructions {
	return &Instructions{data: b, enforceMinimal: enforceMinimal}
}

// Next decodes the next instruction. It returns io.EOF once the script is
// exhausted or the parser has failed.
func (it *Instructions) Next() (Instruction, error) {
	if it.state == parserDead || len(it.data) == 0 {
		return nil, io.EOF
	}

	start := it.offset
	op := Opcode(it.data[0])
	it.advance(1)

	switch {
	case op.IsDataPush():
		if it.enforceMinimal && op == OpData1 && len(it.data) > 0 && isSmallIntValue(it.data[0]) {
			return it.kill(fmt.Errorf("%w: %s of %#02x at offset %d", ErrNonMinimalPush, op, it.data[0], start))
		}
		return it.take(op, int(op), start)
	case op == OpPushData1:
		return it.pushData(op, 1, minPushData1Len, start)
	case op == OpPushData2:
		return it.pushData(op, 2, minPushData2Len, start)
	case op == OpPushData4:
		return it.pushData(op, 4, minPushData4Len, start)
	default:
		return op, nil
	}
}

// All returns an iterator over the remaining instructions. Iteration stops
// after the first error has been yielded.
func (it *Instructions) All() iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		for {
			ins, err := it.Next()
			if err == io.EOF {
				return
			}
			if !yield(ins, err) || err != nil {
				return
			}
		}
	}
}

// Remaining returns the bytes not consumed yet. It is empty once the parser
// is dead; a fresh parser over the same bytes can always be created.
func (it *Instructions) Remaining() Script {
	return New(it.data)
}

// Dead reports whether the parser stopped on an error.
func (it *Instructions) Dead() bool {
	return it.state == parserDead
}

func (it *Instructions) pushData(op Opcode, width, minLen, start int) (Instruction, error) {
	if len(it.data) < width {
		return it.kill(fmt.Errorf("%w: %s length at offset %d needs %d bytes, have %d",
			ErrEarlyEndOfScript, op, start, width, len(it.data)))
	}

	var raw uint32
	switch width {
	case 1:
		raw = uint32(it.data[0])
	case 2:
		raw = uint32(binary.LittleEndian.Uint16(it.data))
	default:
		raw = binary.LittleEndian.Uint32(it.data)
	}
	it.advance(width)

	n, err := safe.Int(raw)
	if err != nil {
		return it.kill(fmt.Errorf("%w: %s at offset %d: %w", ErrNumericOverflow, op, start, err))
	}
	if it.enforceMinimal && n < minLen {
		return it.kill(fmt.Errorf("%w: %s of %d bytes at offset %d", ErrNonMinimalPush, op, n, start))
	}
	return it.take(op, n, start)
}

func (it *Instructions) take(op Opcode, n, start int) (Instruction, error) {
	if len(it.data) < n {
		return it.kill(fmt.Errorf("%w: %s at offset %d pushes %d bytes, have %d",
			ErrEarlyEndOfScript, op, start, n, len(it.data)))
	}
	data := make(PushBytes, n)
	copy(data, it.data[:n])
	it.advance(n)
	return data, nil
}

func (it *Instructions) advance(n int) {
	it.data = it.data[n:]
	it.offset += n
}

func (it *Instructions) kill(err error) (Instruction, error) {
	it.data = nil
	it.state = parserDead
	return nil, err
}

// isSmallIntValue reports whether a one-byte push of v could have been an
// OP_1NEGATE or OP_1..OP_16 instead.
func isSmallIntValue(v byte) bool {
	return v == 0x81 || (v >= 1 && v <= 16)
}
