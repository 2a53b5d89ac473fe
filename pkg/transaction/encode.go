package transaction

import (
	"encoding/binary"

	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/compactsize"
)

// Bytes encodes tx. The segwit marker, flag and witness stacks are written
// only when HasWitness reports true.
func (tx *Transaction) Bytes() []byte {
	return tx.encode(make([]byte, 0, tx.SerializeSize()), tx.HasWitness())
}

// LegacyBytes encodes tx without witness data, as hashed for the txid.
func (tx *Transaction) LegacyBytes() []byte {
	return tx.encode(make([]byte, 0, tx.BaseSize()), false)
}

func (tx *Transaction) encode(b []byte, witness bool) []byte {
	b = binary.LittleEndian.AppendUint32(b, tx.Version)
	if witness {
		b = append(b, segwitMarker, segwitFlag)
	}

	b = compactsize.Append(b, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		b = append(b, in.PreviousTxID[:]...)
		b = binary.LittleEndian.AppendUint32(b, in.Vout)
		b = appendVarSlice(b, in.ScriptSig)
		b = binary.LittleEndian.AppendUint32(b, in.Sequence)
	}

	b = compactsize.Append(b, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		b = binary.LittleEndian.AppendUint64(b, out.Amount)
		b = appendVarSlice(b, out.ScriptPubKey)
	}

	if witness {
		for _, in := range tx.Inputs {
			b = compactsize.Append(b, uint64(len(in.Witness)))
			for _, item := range in.Witness {
				b = appendVarSlice(b, item)
			}
		}
	}

	return binary.LittleEndian.AppendUint32(b, tx.LockTime)
}

func appendVarSlice(b, data []byte) []byte {
	b = compactsize.Append(b, uint64(len(data)))
	return append(b, data...)
}

func countSize(n int) int {
	return compactsize.Size(uint64(n))
}

func varSliceSize(n int) int {
	return countSize(n) + n
}
