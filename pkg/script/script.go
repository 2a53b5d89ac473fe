// Package script builds, parses and classifies Bitcoin consensus scripts.
//
// Scripts are handled as raw bytes; nothing in this package executes them.
package script

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"
)

// Script is an immutable sequence of consensus script bytes.
type Script struct {
	b []byte
}

// New returns a Script holding a copy of b.
func New(b []byte) Script {
	return Script{b: bytes.Clone(b)}
}

// FromHex decodes a hex encoded script.
func FromHex(s string) (Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Script{}, err
	}
	return Script{b: b}, nil
}

// Bytes returns a copy of the script bytes.
func (s Script) Bytes() []byte {
	return bytes.Clone(s.b)
}

// Len returns the script length in bytes.
func (s Script) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the script has no bytes.
func (s Script) IsEmpty() bool {
	return len(s.b) == 0
}

// Equal reports whether both scripts hold the same bytes.
func (s Script) Equal(other Script) bool {
	return bytes.Equal(s.b, other.b)
}

// String returns the hex encoding of the script.
func (s Script) String() string {
	return hex.EncodeToString(s.b)
}

// Disasm renders the script as bitcoind-style asm. Malformed trailing pushes
// are rendered as "[error]" together with the parse error.
func (s Script) Disasm() (string, error) {
	return txscript.DisasmString(s.b)
}

// Instructions returns a parser over the script that accepts non-minimal
// pushes.
func (s Script) Instructions() *Instructions {
	return NewInstructions(s.b, false)
}

// MinimalInstructions returns a parser over the script that rejects
// non-minimal pushes.
func (s Script) MinimalInstructions() *Instructions {
	return NewInstructions(s.b, true)
}

// Classify matches the script against the standard templates.
func (s Script) Classify() (Class, []byte, error) {
	return Classify(s.b)
}
