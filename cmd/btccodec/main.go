package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-codec/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-codec/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
)

const (
	formatDump = "dump"

	// a maximum-weight transaction is 4MB, twice that in hex
	maxLineBytes = 9 << 20
)

// networkOption parses --network through the alias table of network.Parse.
type networkOption network.Network

func (n *networkOption) UnmarshalFlag(value string) error {
	parsed, err := network.Parse(value)
	if err != nil {
		return err
	}
	*n = networkOption(parsed)
	return nil
}

type txCommand struct {
	Hex  string `long:"hex" env:"BTCCODEC_TX_HEX" description:"raw transaction hex"`
	TxID string `long:"txid" env:"BTCCODEC_TX_TXID" description:"transaction id to fetch from the node"`
}

type batchCommand struct {
	File        string `long:"file" env:"BTCCODEC_BATCH_FILE" description:"file with one raw transaction hex per line, - for stdin" default:"-"`
	Workers     int    `long:"workers" env:"BTCCODEC_BATCH_WORKERS" description:"concurrent decoders" default:"4"`
	BatchSize   int    `long:"batch-size" env:"BTCCODEC_BATCH_SIZE" description:"transactions decoded per chunk" default:"256"`
	MetricsAddr string `long:"metrics-addr" env:"BTCCODEC_METRICS_ADDR" description:"address for metrics server, empty disables it"`
}

type addressCommand struct {
	Address string `long:"address" env:"BTCCODEC_ADDRESS" description:"base58 or bech32 address" required:"true"`
}

type scriptCommand struct {
	Hex string `long:"hex" env:"BTCCODEC_SCRIPT_HEX" description:"script hex" required:"true"`
}

type config struct {
	Network     networkOption `long:"network" env:"BTCCODEC_NETWORK" description:"network name" default:"main"`
	Format      string        `long:"format" env:"BTCCODEC_FORMAT" description:"output format" choice:"json" choice:"dump" default:"json"`
	JSONLogs    bool          `long:"json-logs" env:"BTCCODEC_JSON_LOGS" description:"log in JSON instead of console format"`
	RPCURL      string        `long:"rpc-url" env:"BTCCODEC_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"BTCCODEC_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string        `long:"rpc-password" env:"BTCCODEC_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRate     int           `long:"rpc-rps" env:"BTCCODEC_RPC_RPS" description:"maximum RPC requests per second, 0 for unlimited" default:"20"`

	Tx      txCommand      `command:"tx" description:"decode a transaction from hex or fetch it by txid"`
	Batch   batchCommand   `command:"batch" description:"decode newline separated transactions concurrently"`
	Address addressCommand `command:"address" description:"decode an address into its script"`
	Script  scriptCommand  `command:"script" description:"classify a script"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, command, err := parseArgs(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.JSONLogs)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, command, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("btccodec failed", zap.String("command", command), zap.Error(err))
	}
}

func parseArgs(args []string) (config, string, error) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return config{}, "", err
	}
	return cfg, parser.Active.Name, nil
}

func newLogger(jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, command string, cfg config, out io.Writer, logger *zap.Logger) error {
	net := network.Network(cfg.Network)
	scripts, err := bitcoin.NewScriptDecoder(network.DefaultRegistry(), net)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	p := printer{w: out, format: cfg.Format, indent: true}

	switch command {
	case "address":
		view, err := scripts.DecodeAddress(strings.TrimSpace(cfg.Address.Address))
		if err != nil {
			return err
		}
		return p.print(view)

	case "script":
		raw, err := hex.DecodeString(strings.TrimSpace(cfg.Script.Hex))
		if err != nil {
			return fmt.Errorf("decode script hex: %w", err)
		}
		return p.print(scripts.DecodeScript(script.New(raw)))

	case "tx":
		return runTx(ctx, cfg, net, scripts, p, logger)

	case "batch":
		if cfg.Batch.MetricsAddr != "" {
			startMetricsServer(ctx, cfg.Batch.MetricsAddr, logger)
		}
		decoder := newDecoder(net, scripts, nil, cfg.Batch.Workers, logger)
		p.indent = false
		return runBatch(ctx, cfg.Batch, decoder, p, logger)
	}
	return fmt.Errorf("unknown command %q", command)
}

func runTx(ctx context.Context, cfg config, net network.Network, scripts bitcoin.ScriptDecoder, p printer, logger *zap.Logger) error {
	switch {
	case cfg.Tx.Hex != "" && cfg.Tx.TxID != "":
		return errors.New("tx: --hex and --txid are mutually exclusive")

	case cfg.Tx.Hex != "":
		view, err := newDecoder(net, scripts, nil, 1, logger).DecodeHex(cfg.Tx.Hex)
		if err != nil {
			return err
		}
		return p.print(view)

	case cfg.Tx.TxID != "":
		rpcClient, err := bitcoin.NewNodeClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return fmt.Errorf("init rpc client: %w", err)
		}
		defer func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}()
		source := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(net.String()), cfg.RPCRate)

		view, err := newDecoder(net, scripts, source, 1, logger).DecodeByTxID(ctx, strings.TrimSpace(cfg.Tx.TxID))
		if err != nil {
			return err
		}
		return p.print(view)
	}
	return errors.New("tx: one of --hex or --txid is required")
}

func newDecoder(net network.Network, scripts bitcoin.ScriptDecoder, source service.TxSource, workers int, logger *zap.Logger) *service.Decoder {
	return service.NewDecoder(
		net.String(),
		bitcoin.NewOutputConverter(scripts),
		bitcoin.NewInputConverter(),
		source,
		metrics.NewDecoder(net.String()),
		logger,
		workers,
	)
}

// runBatch streams cmd.File through the decoder in chunks and prints one JSON
// line per transaction in input order.
func runBatch(ctx context.Context, cmd batchCommand, decoder *service.Decoder, p printer, logger *zap.Logger) error {
	in, closeInput, err := openInput(cmd.File)
	if err != nil {
		return err
	}
	defer closeInput()

	decoded := 0
	b := batcher.New(logger, func(ctx context.Context, chunk []string) error {
		views, err := decoder.DecodeBatch(ctx, chunk)
		if err != nil {
			return fmt.Errorf("chunk starting at transaction %d: %w", decoded, err)
		}
		for _, view := range views {
			if err := p.print(view); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		decoded += len(views)
		return nil
	}, cmd.BatchSize, 0, 0)
	b.Start(ctx)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var addErr error
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if addErr = b.Add(ctx, line); addErr != nil {
			break
		}
	}

	if err := b.Stop(); err != nil {
		return err
	}
	if addErr != nil {
		return addErr
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", cmd.File, err)
	}
	logger.Info("batch decoded", zap.Int("transactions", decoded))
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

type printer struct {
	w      io.Writer
	format string
	indent bool
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (p printer) print(v any) error {
	if p.format == formatDump {
		dumper.Fdump(p.w, v)
		return nil
	}
	enc := json.NewEncoder(p.w)
	if p.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
