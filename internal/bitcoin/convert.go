// Package bitcoin adapts decoded transactions and scripts to the CLI model
// and fetches raw transactions from a bitcoin node.
package bitcoin

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

// ErrNodeMismatch is returned when a node's verbose view of a transaction
// disagrees with the locally decoded one.
var ErrNodeMismatch = errors.New("node result mismatch")

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// FormatBTC renders a satoshi amount as a decimal BTC string without unit.
func FormatBTC(sats uint64) (string, error) {
	if sats > math.MaxInt64 {
		return "", fmt.Errorf("amount %d exceeds int64", sats)
	}
	return strconv.FormatFloat(btcutil.Amount(int64(sats)).ToBTC(), 'f', -1, 64), nil
}

// MatchNodeResult checks a decoded transaction against the verbose result the
// node returned for it: identifiers, sizes and every output value.
func MatchNodeResult(tx *transaction.Transaction, res *btcjson.TxRawResult) error {
	if got := tx.TxID().String(); got != res.Txid {
		return fmt.Errorf("%w: txid %s, node %s", ErrNodeMismatch, got, res.Txid)
	}
	if res.Hash != "" {
		if got := tx.WTxID().String(); got != res.Hash {
			return fmt.Errorf("%w: wtxid %s, node %s", ErrNodeMismatch, got, res.Hash)
		}
	}
	if res.Vsize != 0 && int32(tx.VSize()) != res.Vsize {
		return fmt.Errorf("%w: vsize %d, node %d", ErrNodeMismatch, tx.VSize(), res.Vsize)
	}
	if len(tx.Outputs) != len(res.Vout) {
		return fmt.Errorf("%w: %d outputs, node %d", ErrNodeMismatch, len(tx.Outputs), len(res.Vout))
	}
	for i, vout := range res.Vout {
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return fmt.Errorf("tx %s output %d node value: %w", res.Txid, i, err)
		}
		if value != tx.Outputs[i].Amount {
			return fmt.Errorf("%w: output %d value %d, node %d", ErrNodeMismatch, i, tx.Outputs[i].Amount, value)
		}
	}
	return nil
}
