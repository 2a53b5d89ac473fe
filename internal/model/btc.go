// Package model holds the JSON views the CLI prints.
package model

// Transaction is a decoded transaction with derived identifiers and sizes.
type Transaction struct {
	Network    string              `json:"network"`
	TxID       string              `json:"txid"`
	WTxID      string              `json:"wtxid"`
	Version    uint32              `json:"version"`
	LockTime   uint32              `json:"locktime"`
	Size       int                 `json:"size"`
	VSize      int                 `json:"vsize"`
	Weight     int                 `json:"weight"`
	IsCoinbase bool                `json:"coinbase"`
	HasWitness bool                `json:"segwit"`
	Inputs     []TransactionInput  `json:"inputs"`
	Outputs    []TransactionOutput `json:"outputs"`
}

// TransactionInput describes a single transaction input.
type TransactionInput struct {
	Index        uint32   `json:"index"`
	PrevTxID     string   `json:"prev_txid"`
	PrevVout     uint32   `json:"prev_vout"`
	Sequence     uint32   `json:"sequence"`
	ScriptSigHex string   `json:"script_sig_hex"`
	ScriptSigAsm string   `json:"script_sig_asm,omitempty"`
	Witness      []string `json:"witness,omitempty"`
}

// TransactionOutput describes a single transaction output.
type TransactionOutput struct {
	Index      uint32 `json:"index"`
	Value      uint64 `json:"value"`
	ValueBTC   string `json:"value_btc"`
	ScriptType string `json:"script_type"`
	ScriptHex  string `json:"script_hex"`
	ScriptAsm  string `json:"script_asm,omitempty"`
	Address    string `json:"address,omitempty"`
}

// Script describes a classified script.
type Script struct {
	Network string `json:"network"`
	Type    string `json:"type"`
	Hex     string `json:"hex"`
	Asm     string `json:"asm,omitempty"`
	Payload string `json:"payload,omitempty"`
	Address string `json:"address,omitempty"`
}

// Address describes a parsed address and the script it pays to.
type Address struct {
	Address   string `json:"address"`
	Network   string `json:"network"`
	Type      string `json:"type"`
	Payload   string `json:"payload"`
	ScriptHex string `json:"script_hex"`
	ScriptAsm string `json:"script_asm"`
}
