package bitcoin

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

// outputConverter converts decoded outputs to model outputs using a decoder.
type outputConverter struct {
	decoder ScriptDecoder
}

// NewOutputConverter constructs a converter that renders outputs with their
// script type and address.
func NewOutputConverter(decoder ScriptDecoder) OutputConverter {
	return &outputConverter{decoder: decoder}
}

func (c *outputConverter) Convert(outs []transaction.Output) ([]model.TransactionOutput, error) {
	result := make([]model.TransactionOutput, 0, len(outs))
	for idx, out := range outs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("output index overflow: %w", err)
		}
		btc, err := FormatBTC(out.Amount)
		if err != nil {
			return nil, fmt.Errorf("output %d value: %w", idx, err)
		}

		decoded := c.decoder.DecodeScript(script.New(out.ScriptPubKey))
		result = append(result, model.TransactionOutput{
			Index:      index,
			Value:      out.Amount,
			ValueBTC:   btc,
			ScriptType: decoded.Type,
			ScriptHex:  decoded.Hex,
			ScriptAsm:  decoded.Asm,
			Address:    decoded.Address,
		})
	}
	return result, nil
}
