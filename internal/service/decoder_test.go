package service

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/transaction"
)

// block170Hex is the first transaction spending a coinbase output.
const (
	block170Hex  = "0100000001c997a5e56e104102fa209c6a852dd90660a20b2d9c352423edce25857fcd3704000000004847304402204e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd410220181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d0901ffffffff0200ca9a3b00000000434104ae1a62fe09c5f51b13905f07f06b99a2f7159b2225f374cd378d71302fa28414e7aab37397f554a7df5f142c21c1b7303b8a0626f1baded5c72a704f7e6cd84cac00286bee0000000043410411db93e1dcdb8a016b49840f8c53bc1eb68a382e97b1482ecad7b148a6909a5cb2e0eaddfb84ccf9744464f82e160bfa9b8b64f9d4c03f999b8643f656b412a3ac00000000"
	block170TxID = "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16"
)

// p2wpkhTx has a single P2WPKH output and one witness input.
func p2wpkhTx(t *testing.T) *transaction.Transaction {
	t.Helper()
	program, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	if err != nil {
		t.Fatalf("decode program: %v", err)
	}
	return &transaction.Transaction{
		Version: 2,
		Inputs: []transaction.Input{{
			Vout:     0,
			Sequence: 0xfffffffd,
			Witness:  [][]byte{{0x30, 0x01}, {0x02, 0x03}},
		}},
		Outputs: []transaction.Output{{
			Amount:       12_345,
			ScriptPubKey: append([]byte{0x00, 0x14}, program...),
		}},
	}
}

func newRealDecoder(t *testing.T, net network.Network, source TxSource, metrics DecoderMetrics) *Decoder {
	t.Helper()
	sd, err := bitcoin.NewScriptDecoder(network.DefaultRegistry(), net)
	if err != nil {
		t.Fatalf("NewScriptDecoder() error = %v", err)
	}
	return NewDecoder(net.String(), bitcoin.NewOutputConverter(sd), bitcoin.NewInputConverter(), source, metrics, zap.NewNop(), 4)
}

func lenientMetrics(ctrl *gomock.Controller) *MockDecoderMetrics {
	m := NewMockDecoderMetrics(ctrl)
	m.EXPECT().ObserveDecode(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveBatch(gomock.Any(), gomock.Any()).AnyTimes()
	return m
}

func TestDecoder_DecodeHex_Legacy(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := NewMockDecoderMetrics(ctrl)
	metrics.EXPECT().ObserveDecode("hex", nil, gomock.Any())
	metrics.EXPECT().ObserveTransaction(275, []string{"nonstandard", "nonstandard"})

	d := newRealDecoder(t, network.Main, nil, metrics)
	got, err := d.DecodeHex("  " + block170Hex + "\n")
	if err != nil {
		t.Fatalf("DecodeHex() error = %v", err)
	}

	if got.TxID != block170TxID || got.WTxID != block170TxID {
		t.Fatalf("DecodeHex() ids = %s/%s, want %s", got.TxID, got.WTxID, block170TxID)
	}
	if got.Network != "main" || got.Version != 1 || got.Size != 275 || got.VSize != 275 || got.Weight != 1100 {
		t.Fatalf("DecodeHex() header = %+v", got)
	}
	if got.HasWitness || got.IsCoinbase {
		t.Fatalf("DecodeHex() flags segwit=%v coinbase=%v", got.HasWitness, got.IsCoinbase)
	}
	if len(got.Inputs) != 1 || got.Inputs[0].PrevTxID != "0437cd7f8525ceed2324359c2d0ba26006d92d856a9c20fa0241106ee5a597c9" {
		t.Fatalf("DecodeHex() inputs = %+v", got.Inputs)
	}
	if got.Inputs[0].ScriptSigAsm == "" {
		t.Fatal("DecodeHex() expected script sig asm")
	}
	if len(got.Outputs) != 2 || got.Outputs[0].ValueBTC != "10" || got.Outputs[1].ValueBTC != "40" {
		t.Fatalf("DecodeHex() outputs = %+v", got.Outputs)
	}
}

func TestDecoder_DecodeRaw_Segwit(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tx := p2wpkhTx(t)
	d := newRealDecoder(t, network.Main, nil, lenientMetrics(ctrl))

	got, err := d.DecodeRaw(tx.Bytes())
	if err != nil {
		t.Fatalf("DecodeRaw() error = %v", err)
	}
	if !got.HasWitness {
		t.Fatal("DecodeRaw() expected witness")
	}
	if got.TxID == got.WTxID {
		t.Fatal("DecodeRaw() txid and wtxid must differ for witness transactions")
	}
	want := model.TransactionOutput{
		Index:      0,
		Value:      12_345,
		ValueBTC:   "0.00012345",
		ScriptType: "witness_v0_keyhash",
		ScriptHex:  "0014751e76e8199196d454941c45d1b3a323f1433bd6",
		ScriptAsm:  "0 751e76e8199196d454941c45d1b3a323f1433bd6",
		Address:    "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	}
	if len(got.Outputs) != 1 || got.Outputs[0] != want {
		t.Fatalf("DecodeRaw() outputs = %+v, want %+v", got.Outputs, want)
	}
	if w := got.Inputs[0].Witness; len(w) != 2 || w[0] != "3001" || w[1] != "0203" {
		t.Fatalf("DecodeRaw() witness = %v", w)
	}
}

func TestDecoder_DecodeRaw_HighVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tx := p2wpkhTx(t)
	tx.Version = 0x80000000
	d := newRealDecoder(t, network.Main, nil, lenientMetrics(ctrl))

	got, err := d.DecodeRaw(tx.Bytes())
	if err != nil {
		t.Fatalf("DecodeRaw() error = %v", err)
	}
	if got.Version != 0x80000000 {
		t.Fatalf("DecodeRaw() version = %d, want %d", got.Version, uint32(0x80000000))
	}
}

func TestDecoder_DecodeHex_Errors(t *testing.T) {
	errConvert := errors.New("convert failed")

	tests := []struct {
		name    string
		input   string
		setup   func(out *MockOutputConverter, in *MockInputConverter, m *MockDecoderMetrics)
		wantErr error
	}{
		{
			name:  "invalid hex",
			input: "zz",
			setup: func(_ *MockOutputConverter, _ *MockInputConverter, m *MockDecoderMetrics) {
				m.EXPECT().ObserveDecode("hex", gomock.Not(nil), gomock.Any())
			},
			wantErr: hex.InvalidByteError('z'),
		},
		{
			name:  "truncated transaction",
			input: block170Hex[:100],
			setup: func(_ *MockOutputConverter, _ *MockInputConverter, m *MockDecoderMetrics) {
				m.EXPECT().ObserveDecode("hex", gomock.Not(nil), gomock.Any())
			},
			wantErr: transaction.ErrTruncated,
		},
		{
			name:  "input converter error",
			input: block170Hex,
			setup: func(_ *MockOutputConverter, in *MockInputConverter, m *MockDecoderMetrics) {
				in.EXPECT().Convert(gomock.Any()).Return(nil, errConvert)
				m.EXPECT().ObserveDecode("hex", gomock.Not(nil), gomock.Any())
			},
			wantErr: errConvert,
		},
		{
			name:  "output converter error",
			input: block170Hex,
			setup: func(out *MockOutputConverter, in *MockInputConverter, m *MockDecoderMetrics) {
				in.EXPECT().Convert(gomock.Any()).Return([]model.TransactionInput{}, nil)
				out.EXPECT().Convert(gomock.Len(2)).Return(nil, errConvert)
				m.EXPECT().ObserveDecode("hex", gomock.Not(nil), gomock.Any())
			},
			wantErr: errConvert,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			out := NewMockOutputConverter(ctrl)
			in := NewMockInputConverter(ctrl)
			metrics := NewMockDecoderMetrics(ctrl)
			tt.setup(out, in, metrics)

			d := NewDecoder("main", out, in, nil, metrics, nil, 1)
			_, err := d.DecodeHex(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeHex() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecoder_DecodeHex_InvalidHexDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	// the bad byte sits at the end, so the whole input is scanned first
	input := strings.Repeat("00", 4<<20) + "zz"
	scanStart := time.Now()
	_, scanErr := hex.DecodeString(input)
	scan := time.Since(scanStart)
	if scanErr == nil {
		t.Fatal("expected invalid hex")
	}

	var observed time.Duration
	metrics := NewMockDecoderMetrics(ctrl)
	metrics.EXPECT().ObserveDecode("hex", gomock.Not(nil), gomock.Any()).
		Do(func(_ string, _ error, started time.Time) {
			observed = time.Since(started)
		})

	d := NewDecoder("main", NewMockOutputConverter(ctrl), NewMockInputConverter(ctrl), nil, metrics, nil, 1)
	if _, err := d.DecodeHex(input); err == nil {
		t.Fatal("DecodeHex() expected error")
	}
	if observed < scan/4 {
		t.Fatalf("observed duration %v does not cover hex decoding (%v)", observed, scan)
	}
}

func TestDecoder_DecodeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	segwitHex := hex.EncodeToString(p2wpkhTx(t).Bytes())
	d := newRealDecoder(t, network.Main, nil, lenientMetrics(ctrl))

	got, err := d.DecodeBatch(context.Background(), []string{block170Hex, segwitHex, block170Hex})
	if err != nil {
		t.Fatalf("DecodeBatch() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("DecodeBatch() returned %d transactions, want 3", len(got))
	}
	if got[0].TxID != block170TxID || got[2].TxID != block170TxID || !got[1].HasWitness {
		t.Fatalf("DecodeBatch() lost input order: %s %s %s", got[0].TxID, got[1].TxID, got[2].TxID)
	}

	_, err = d.DecodeBatch(context.Background(), []string{block170Hex, "00", block170Hex})
	if !errors.Is(err, transaction.ErrTruncated) {
		t.Fatalf("DecodeBatch() error = %v, want ErrTruncated", err)
	}
	if !strings.Contains(err.Error(), "transaction 1") {
		t.Fatalf("DecodeBatch() error = %v, want failing index", err)
	}
}

func TestDecoder_DecodeBatch_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metrics := NewMockDecoderMetrics(ctrl)
	metrics.EXPECT().ObserveDecode(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveBatch(nil, 2)

	d := newRealDecoder(t, network.Main, nil, metrics)
	if _, err := d.DecodeBatch(context.Background(), []string{block170Hex, block170Hex}); err != nil {
		t.Fatalf("DecodeBatch() error = %v", err)
	}
}

func TestDecoder_DecodeByTxID(t *testing.T) {
	raw, err := hex.DecodeString(block170Hex)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	errNode := errors.New("node down")

	tests := []struct {
		name    string
		noSrc   bool
		setup   func(src *MockTxSource)
		wantErr error
	}{
		{
			name: "fetches and matches node result",
			setup: func(src *MockTxSource) {
				src.EXPECT().RawTransaction(gomock.Any(), block170TxID).Return(bitcoin.RawTransaction{
					Bytes: raw,
					Result: &btcjson.TxRawResult{
						Txid: block170TxID,
						Hash: block170TxID,
						Vout: []btcjson.Vout{{Value: 10}, {Value: 40}},
					},
				}, nil)
			},
		},
		{
			name: "node disagrees",
			setup: func(src *MockTxSource) {
				src.EXPECT().RawTransaction(gomock.Any(), block170TxID).Return(bitcoin.RawTransaction{
					Bytes: raw,
					Result: &btcjson.TxRawResult{
						Txid: block170TxID,
						Vout: []btcjson.Vout{{Value: 10}, {Value: 41}},
					},
				}, nil)
			},
			wantErr: bitcoin.ErrNodeMismatch,
		},
		{
			name: "source error",
			setup: func(src *MockTxSource) {
				src.EXPECT().RawTransaction(gomock.Any(), block170TxID).Return(bitcoin.RawTransaction{}, errNode)
			},
			wantErr: errNode,
		},
		{
			name:    "no source",
			noSrc:   true,
			wantErr: ErrNoSource,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			var source TxSource
			if !tt.noSrc {
				src := NewMockTxSource(ctrl)
				tt.setup(src)
				source = src
			}
			d := newRealDecoder(t, network.Main, source, lenientMetrics(ctrl))

			got, err := d.DecodeByTxID(context.Background(), block170TxID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeByTxID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeByTxID() error = %v", err)
			}
			if got.TxID != block170TxID {
				t.Fatalf("DecodeByTxID() txid = %s", got.TxID)
			}
		})
	}
}
