package transaction

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/compactsize"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/safe"
)

// Smallest encodings, used to reject counts the remaining bytes cannot hold
// before anything is allocated.
const (
	minInputSize   = chainhash.HashSize + 4 + 1 + 4
	minOutputSize  = 8 + 1
	minWitnessItem = 1
)

// FromBytes decodes a complete transaction. A 0x00 byte after the version is
// read as the segwit marker and must be followed by the 0x01 flag; any other
// byte starts a legacy input count. A flagged transaction must carry at least
// one non-empty witness stack, so every accepted input re-encodes to itself.
func FromBytes(b []byte) (*Transaction, error) {
	r := &reader{b: b}
	tx := &Transaction{}

	version, err := r.uint32("version")
	if err != nil {
		return nil, err
	}
	tx.Version = version

	segwit := r.peek() == segwitMarker
	if segwit {
		r.skip(1)
		flag, err := r.byte("flag")
		if err != nil {
			return nil, err
		}
		if flag != segwitFlag {
			return nil, fmt.Errorf("%w: %#02x", ErrInvalidFlag, flag)
		}
	}

	nIn, err := r.count("input count", minInputSize)
	if err != nil {
		return nil, err
	}
	tx.Inputs = make([]Input, nIn)
	for i := range tx.Inputs {
		if err := r.input(&tx.Inputs[i]); err != nil {
			return nil, err
		}
	}

	nOut, err := r.count("output count", minOutputSize)
	if err != nil {
		return nil, err
	}
	tx.Outputs = make([]Output, nOut)
	for i := range tx.Outputs {
		if err := r.output(&tx.Outputs[i]); err != nil {
			return nil, err
		}
	}

	if segwit {
		for i := range tx.Inputs {
			if tx.Inputs[i].Witness, err = r.witness(); err != nil {
				return nil, err
			}
		}
		if !tx.HasWitness() {
			return nil, ErrSuperfluousWitness
		}
	}

	if tx.LockTime, err = r.uint32("locktime"); err != nil {
		return nil, err
	}
	if n := r.remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n)
	}
	return tx, nil
}

// reader is a cursor over an in-memory transaction. Every read names its
// step so truncation errors point at the failing field.
type reader struct {
	b   []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.b) - r.off
}

func (r *reader) peek() int {
	if r.remaining() == 0 {
		return -1
	}
	return int(r.b[r.off])
}

func (r *reader) skip(n int) {
	r.off += n
}

func (r *reader) next(step string, n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, truncated(step)
	}
	b := r.b[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) byte(step string) (byte, error) {
	b, err := r.next(step, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint32(step string) (uint32, error) {
	b, err := r.next(step, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64(step string) (uint64, error) {
	b, err := r.next(step, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) varInt(step string) (uint64, error) {
	v, n, err := compactsize.Decode(r.b[r.off:])
	if err != nil {
		return 0, truncated(step)
	}
	r.off += n
	return v, nil
}

// count reads a compact-size count of elements at least minSize bytes long
// each and fails as truncated if they cannot fit in the remaining bytes.
func (r *reader) count(step string, minSize int) (int, error) {
	v, err := r.varInt(step)
	if err != nil {
		return 0, err
	}
	n, err := safe.Int(v)
	if err != nil || n > r.remaining()/minSize {
		return 0, truncated(step)
	}
	return n, nil
}

// varSlice reads a compact-size length followed by that many bytes. The
// result is a copy.
func (r *reader) varSlice(step string) ([]byte, error) {
	n, err := r.count(step, 1)
	if err != nil {
		return nil, err
	}
	b, err := r.next(step, n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

func (r *reader) input(in *Input) error {
	txid, err := r.next("input txid", chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(in.PreviousTxID[:], txid)

	if in.Vout, err = r.uint32("input vout"); err != nil {
		return err
	}
	if in.ScriptSig, err = r.varSlice("input script"); err != nil {
		return err
	}
	if in.Sequence, err = r.uint32("input sequence"); err != nil {
		return err
	}
	return nil
}

func (r *reader) output(out *Output) error {
	var err error
	if out.Amount, err = r.uint64("output amount"); err != nil {
		return err
	}
	if out.ScriptPubKey, err = r.varSlice("output script"); err != nil {
		return err
	}
	return nil
}

func (r *reader) witness() ([][]byte, error) {
	n, err := r.count("witness count", minWitnessItem)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	stack := make([][]byte, n)
	for i := range stack {
		if stack[i], err = r.varSlice("witness item"); err != nil {
			return nil, err
		}
	}
	return stack, nil
}
