package bitcoin

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/clock"
)

const (
	defaultRPCAttempts   = 3
	defaultRPCRetryDelay = 200 * time.Millisecond
)

// RawTransaction is a transaction fetched from a node: the wire bytes plus
// the node's own verbose view used for cross-checking.
type RawTransaction struct {
	Bytes  []byte
	Result *btcjson.TxRawResult
}

// RPCClient fetches raw transactions with rate limiting, retries and metrics.
type RPCClient struct {
	client     RawTxClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
	attempts   int
	retryDelay time.Duration
}

// NewRPCClient constructs an instrumented RPC client issuing at most rps
// requests per second; rps <= 0 disables the limit.
func NewRPCClient(client RawTxClient, rpcMetrics RPCMetrics, rps int) *RPCClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
		attempts:   defaultRPCAttempts,
		retryDelay: defaultRPCRetryDelay,
	}
}

// RawTransaction fetches txid, given in display order. Unknown transactions
// and malformed ids are not retried.
func (r *RPCClient) RawTransaction(ctx context.Context, txid string) (RawTransaction, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return RawTransaction{}, fmt.Errorf("parse txid %q: %w", txid, err)
	}

	var res *btcjson.TxRawResult
	err = clock.Retry(ctx, r.attempts, r.retryDelay, func(context.Context) error {
		r.limiter.Take()
		var callErr error
		res, callErr = r.getRawTransactionVerbose(hash)
		if isPermanentRPCError(callErr) {
			return clock.Permanent(callErr)
		}
		return callErr
	})
	if err != nil {
		return RawTransaction{}, fmt.Errorf("getrawtransaction %s: %w", txid, err)
	}

	raw, err := hex.DecodeString(res.Hex)
	if err != nil {
		return RawTransaction{}, fmt.Errorf("getrawtransaction %s hex: %w", txid, err)
	}
	return RawTransaction{Bytes: raw, Result: res}, nil
}

func (r *RPCClient) getRawTransactionVerbose(hash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(hash)
}

func isPermanentRPCError(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	switch rpcErr.Code {
	case btcjson.ErrRPCNoTxInfo, btcjson.ErrRPCInvalidParameter:
		return true
	}
	return false
}

// NewNodeClient dials a bitcoind JSON-RPC endpoint in HTTP POST mode.
func NewNodeClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	return rpcclient.New(cfg, nil)
}
