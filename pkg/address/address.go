// Package address converts between Bitcoin address text, address payloads and
// the output scripts they pay to.
package address

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
)

// Payload is what an address commits to. It is one of PubkeyHash, ScriptHash
// or WitnessProgram.
type Payload interface {
	isPayload()
}

// PubkeyHash is the HASH160 of a public key.
type PubkeyHash [20]byte

// ScriptHash is the HASH160 of a redeem script.
type ScriptHash [20]byte

// WitnessVersion is the segwit version carried by a witness program.
type WitnessVersion byte

const (
	WitnessV0 WitnessVersion = 0
	WitnessV1 WitnessVersion = 1
)

// WitnessProgram is a segwit version together with its program bytes.
type WitnessProgram struct {
	Version WitnessVersion
	Program []byte
}

func (PubkeyHash) isPayload()     {}
func (ScriptHash) isPayload()     {}
func (WitnessProgram) isPayload() {}

// NewWitnessProgram validates the version and program length and returns a
// payload holding a copy of program.
func NewWitnessProgram(version WitnessVersion, program []byte) (WitnessProgram, error) {
	if err := checkWitnessProgram(version, len(program)); err != nil {
		return WitnessProgram{}, err
	}
	return WitnessProgram{Version: version, Program: bytes.Clone(program)}, nil
}

func checkWitnessProgram(version WitnessVersion, n int) error {
	switch version {
	case WitnessV0:
		if n != 20 && n != 32 {
			return fmt.Errorf("%w: version 0 program of %d bytes", ErrInvalidWitnessProgramLength, n)
		}
	case WitnessV1:
		if n != 32 {
			return fmt.Errorf("%w: version 1 program of %d bytes", ErrInvalidWitnessProgramLength, n)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedWitnessVersion, version)
	}
	return nil
}

// Address is a payload bound to the network it is valid on.
type Address struct {
	network network.Network
	payload Payload
}

// New binds payload to net. Witness programs are validated.
func New(net network.Network, payload Payload) (Address, error) {
	switch p := payload.(type) {
	case PubkeyHash, ScriptHash:
	case WitnessProgram:
		wp, err := NewWitnessProgram(p.Version, p.Program)
		if err != nil {
			return Address{}, err
		}
		payload = wp
	default:
		return Address{}, fmt.Errorf("unsupported payload %T", payload)
	}
	return Address{network: net, payload: payload}, nil
}

func (a Address) Network() network.Network { return a.network }
func (a Address) Payload() Payload         { return a.payload }

// Equal reports whether a and b have the same network and payload.
func (a Address) Equal(b Address) bool {
	if a.network != b.network {
		return false
	}
	switch p := a.payload.(type) {
	case PubkeyHash:
		q, ok := b.payload.(PubkeyHash)
		return ok && p == q
	case ScriptHash:
		q, ok := b.payload.(ScriptHash)
		return ok && p == q
	case WitnessProgram:
		q, ok := b.payload.(WitnessProgram)
		return ok && p.Version == q.Version && bytes.Equal(p.Program, q.Program)
	default:
		return a.payload == nil && b.payload == nil
	}
}

// Kind names the payload type the way bitcoind names the matching script.
func (a Address) Kind() script.Class {
	switch p := a.payload.(type) {
	case PubkeyHash:
		return script.PubKeyHash
	case ScriptHash:
		return script.ScriptHash
	case WitnessProgram:
		switch {
		case p.Version == WitnessV0 && len(p.Program) == 20:
			return script.WitnessV0PubKeyHash
		case p.Version == WitnessV0 && len(p.Program) == 32:
			return script.WitnessV0ScriptHash
		case p.Version == WitnessV1:
			return script.WitnessV1Taproot
		}
	}
	return script.NonStandard
}

// Script returns the output script paying to a.
func (a Address) Script() (script.Script, error) {
	switch p := a.payload.(type) {
	case PubkeyHash:
		return script.P2PKH(p[:])
	case ScriptHash:
		return script.P2SH(p[:])
	case WitnessProgram:
		switch p.Version {
		case WitnessV0:
			switch len(p.Program) {
			case 20:
				return script.P2WPKH(p.Program)
			case 32:
				return script.P2WSH(p.Program)
			}
			return script.Script{}, fmt.Errorf("%w: version 0 program of %d bytes",
				ErrInvalidWitnessProgramLength, len(p.Program))
		case WitnessV1:
			return script.P2TR(p.Program)
		}
		return script.Script{}, fmt.Errorf("%w: %d", ErrUnsupportedWitnessVersion, p.Version)
	default:
		return script.Script{}, fmt.Errorf("unsupported payload %T", a.payload)
	}
}

// payloadFromScript maps a classified output script to its payload.
func payloadFromScript(s script.Script) (Payload, error) {
	class, data, err := s.Classify()
	if err != nil {
		return nil, err
	}
	switch class {
	case script.PubKeyHash:
		return PubkeyHash(data), nil
	case script.ScriptHash:
		return ScriptHash(data), nil
	case script.WitnessV0PubKeyHash, script.WitnessV0ScriptHash:
		return WitnessProgram{Version: WitnessV0, Program: bytes.Clone(data)}, nil
	case script.WitnessV1Taproot:
		return WitnessProgram{Version: WitnessV1, Program: bytes.Clone(data)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotAddressable, class)
	}
}
