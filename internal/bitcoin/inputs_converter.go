package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

// inputConverter converts decoded inputs to model inputs.
type inputConverter struct{}

// NewInputConverter constructs an input converter.
func NewInputConverter() InputConverter {
	return &inputConverter{}
}

// Convert renders the inputs of tx. Coinbase script sigs carry arbitrary data
// and are not disassembled.
func (c *inputConverter) Convert(tx *transaction.Transaction) ([]model.TransactionInput, error) {
	coinbase := tx.IsCoinbase()
	result := make([]model.TransactionInput, 0, len(tx.Inputs))
	for idx, in := range tx.Inputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("input index overflow: %w", err)
		}

		item := model.TransactionInput{
			Index:        index,
			PrevTxID:     in.PreviousTxID.String(),
			PrevVout:     in.Vout,
			Sequence:     in.Sequence,
			ScriptSigHex: hex.EncodeToString(in.ScriptSig),
		}
		if !coinbase && len(in.ScriptSig) > 0 {
			item.ScriptSigAsm, _ = script.New(in.ScriptSig).Disasm()
		}
		if len(in.Witness) > 0 {
			item.Witness = make([]string, len(in.Witness))
			for i, w := range in.Witness {
				item.Witness[i] = hex.EncodeToString(w)
			}
		}
		result = append(result, item)
	}
	return result, nil
}
