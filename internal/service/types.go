package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	OutputConverter interface {
		Convert(outs []transaction.Output) ([]model.TransactionOutput, error)
	}
	InputConverter interface {
		Convert(tx *transaction.Transaction) ([]model.TransactionInput, error)
	}
	TxSource interface {
		RawTransaction(ctx context.Context, txid string) (bitcoin.RawTransaction, error)
	}
	DecoderMetrics interface {
		ObserveDecode(source string, err error, started time.Time)
		ObserveTransaction(size int, scriptTypes []string)
		ObserveBatch(err error, size int)
	}
)
