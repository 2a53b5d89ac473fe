package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScriptDecoder classifies scripts and renders them with their address.
	ScriptDecoder interface {
		DecodeScript(s script.Script) model.Script
		DecodeAddress(text string) (model.Address, error)
	}
	// OutputConverter renders decoded outputs.
	OutputConverter interface {
		Convert(outs []transaction.Output) ([]model.TransactionOutput, error)
	}
	// InputConverter renders decoded inputs.
	InputConverter interface {
		Convert(tx *transaction.Transaction) ([]model.TransactionInput, error)
	}
	// RawTxClient is the subset of the btcd rpcclient used to fetch
	// transactions.
	RawTxClient interface {
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
