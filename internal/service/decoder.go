// Package service composes transaction decoding, output classification and
// address rendering into the views the CLI prints.
package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/workerpool"
)

// ErrNoSource is returned by DecodeByTxID when no node is configured.
var ErrNoSource = errors.New("no transaction source configured")

const (
	sourceRaw = "raw"
	sourceHex = "hex"
	sourceRPC = "rpc"
)

// Decoder turns raw transactions into model.Transaction views.
type Decoder struct {
	network string
	outputs OutputConverter
	inputs  InputConverter
	source  TxSource
	metrics DecoderMetrics
	logger  *zap.Logger
	workers int
}

// NewDecoder builds a decoder. source may be nil when transactions are only
// supplied as bytes; a nil logger discards logs.
func NewDecoder(
	network string,
	outputs OutputConverter,
	inputs InputConverter,
	source TxSource,
	metrics DecoderMetrics,
	logger *zap.Logger,
	workers int,
) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Decoder{
		network: network,
		outputs: outputs,
		inputs:  inputs,
		source:  source,
		metrics: metrics,
		logger:  logger,
		workers: workers,
	}
}

// DecodeRaw decodes wire bytes.
func (d *Decoder) DecodeRaw(raw []byte) (model.Transaction, error) {
	view, _, err := d.decode(raw, sourceRaw)
	return view, err
}

// DecodeHex decodes a hex encoded transaction. Surrounding whitespace is
// ignored.
func (d *Decoder) DecodeHex(s string) (model.Transaction, error) {
	started := time.Now()
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		d.metrics.ObserveDecode(sourceHex, err, started)
		return model.Transaction{}, fmt.Errorf("decode hex: %w", err)
	}
	view, _, err := d.decode(raw, sourceHex)
	return view, err
}

// DecodeBatch decodes hex encoded transactions concurrently. Results keep
// input order; the first failure cancels the batch.
func (d *Decoder) DecodeBatch(ctx context.Context, hexes []string) ([]model.Transaction, error) {
	views, err := workerpool.Map(ctx, d.workers, hexes, func(_ context.Context, i int, s string) (model.Transaction, error) {
		view, err := d.DecodeHex(s)
		if err != nil {
			d.logger.Warn("failed to decode transaction",
				zap.String("network", d.network),
				zap.Int("index", i),
				zap.Error(err))
			return model.Transaction{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		return view, nil
	})
	d.metrics.ObserveBatch(err, len(hexes))
	if err != nil {
		return nil, err
	}

	d.logger.Debug("decoded batch",
		zap.String("network", d.network),
		zap.Int("transactions", len(views)))
	return views, nil
}

// DecodeByTxID fetches txid from the node, decodes it and checks the result
// against the node's own view of the transaction.
func (d *Decoder) DecodeByTxID(ctx context.Context, txid string) (model.Transaction, error) {
	if d.source == nil {
		return model.Transaction{}, ErrNoSource
	}

	fetched, err := d.source.RawTransaction(ctx, txid)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("fetch %s: %w", txid, err)
	}

	view, tx, err := d.decode(fetched.Bytes, sourceRPC)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s: %w", txid, err)
	}
	if fetched.Result != nil {
		if err := bitcoin.MatchNodeResult(tx, fetched.Result); err != nil {
			d.logger.Error("decoded transaction disagrees with node",
				zap.String("network", d.network),
				zap.String("txid", txid),
				zap.Error(err))
			return model.Transaction{}, err
		}
	}
	return view, nil
}

func (d *Decoder) decode(raw []byte, source string) (view model.Transaction, tx *transaction.Transaction, err error) {
	started := time.Now()
	defer func() {
		d.metrics.ObserveDecode(source, err, started)
	}()

	tx, err = transaction.FromBytes(raw)
	if err != nil {
		return model.Transaction{}, nil, fmt.Errorf("decode transaction: %w", err)
	}

	inputs, err := d.inputs.Convert(tx)
	if err != nil {
		return model.Transaction{}, nil, fmt.Errorf("convert inputs: %w", err)
	}
	outputs, err := d.outputs.Convert(tx.Outputs)
	if err != nil {
		return model.Transaction{}, nil, fmt.Errorf("convert outputs: %w", err)
	}

	scriptTypes := make([]string, len(outputs))
	for i, out := range outputs {
		scriptTypes[i] = out.ScriptType
	}
	d.metrics.ObserveTransaction(tx.SerializeSize(), scriptTypes)

	return model.Transaction{
		Network:    d.network,
		TxID:       tx.TxID().String(),
		WTxID:      tx.WTxID().String(),
		Version:    tx.Version,
		LockTime:   tx.LockTime,
		Size:       tx.SerializeSize(),
		VSize:      tx.VSize(),
		Weight:     tx.Weight(),
		IsCoinbase: tx.IsCoinbase(),
		HasWitness: tx.HasWitness(),
		Inputs:     inputs,
		Outputs:    outputs,
	}, tx, nil
}
