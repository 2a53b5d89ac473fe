// Package transaction decodes and encodes Bitcoin transactions in their
// consensus wire format, including segwit witness data.
package transaction

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// witnessScaleFactor weighs non-witness bytes against witness bytes.
	witnessScaleFactor = 4

	segwitMarker = 0x00
	segwitFlag   = 0x01

	// coinbaseVout is the output index a coinbase input spends.
	coinbaseVout = 0xffffffff
)

// Transaction is a decoded transaction. Inputs and outputs keep wire order.
type Transaction struct {
	Version  uint32
	Inputs   []Input
	Outputs  []Output
	LockTime uint32
}

// Input spends a previous output.
type Input struct {
	// PreviousTxID holds the digest in wire byte order; String renders the
	// reversed form used by explorers and bitcoind.
	PreviousTxID chainhash.Hash
	Vout         uint32
	ScriptSig    []byte
	Sequence     uint32
	Witness      [][]byte
}

// Output assigns an amount in satoshis to a locking script.
type Output struct {
	Amount       uint64
	ScriptPubKey []byte
}

// HasWitness reports whether any input carries witness items. Only such
// transactions are encoded with the segwit marker and flag.
func (tx *Transaction) HasWitness() bool {
	for _, in := range tx.Inputs {
		if len(in.Witness) > 0 {
			return true
		}
	}
	return false
}

// IsCoinbase reports whether tx has a single input spending the null outpoint.
func (tx *Transaction) IsCoinbase() bool {
	if len(tx.Inputs) != 1 {
		return false
	}
	in := tx.Inputs[0]
	return in.Vout == coinbaseVout && in.PreviousTxID == chainhash.Hash{}
}

// TxID is the double SHA-256 of the encoding without witness data.
func (tx *Transaction) TxID() chainhash.Hash {
	return chainhash.DoubleHashH(tx.LegacyBytes())
}

// WTxID is the double SHA-256 of the full encoding. It equals TxID for
// transactions without witness data.
func (tx *Transaction) WTxID() chainhash.Hash {
	return chainhash.DoubleHashH(tx.Bytes())
}

// SerializeSize is the length of Bytes.
func (tx *Transaction) SerializeSize() int {
	n := tx.BaseSize()
	if tx.HasWitness() {
		n += 2
		for _, in := range tx.Inputs {
			n += countSize(len(in.Witness))
			for _, item := range in.Witness {
				n += varSliceSize(len(item))
			}
		}
	}
	return n
}

// BaseSize is the length of LegacyBytes.
func (tx *Transaction) BaseSize() int {
	n := 4 + countSize(len(tx.Inputs)) + countSize(len(tx.Outputs)) + 4
	for _, in := range tx.Inputs {
		n += chainhash.HashSize + 4 + varSliceSize(len(in.ScriptSig)) + 4
	}
	for _, out := range tx.Outputs {
		n += 8 + varSliceSize(len(out.ScriptPubKey))
	}
	return n
}

// Weight is the BIP 141 transaction weight.
func (tx *Transaction) Weight() int {
	return tx.BaseSize()*(witnessScaleFactor-1) + tx.SerializeSize()
}

// VSize is the weight in virtual bytes, rounded up.
func (tx *Transaction) VSize() int {
	return (tx.Weight() + witnessScaleFactor - 1) / witnessScaleFactor
}
