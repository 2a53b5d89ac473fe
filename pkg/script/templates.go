package script

import "fmt"

const (
	hash160Size     = 20
	witnessHashSize = 32
	xOnlyKeySize    = 32
)

// P2PKH builds OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG.
func P2PKH(hash []byte) (Script, error) {
	if err := checkLen("p2pkh", hash, hash160Size); err != nil {
		return Script{}, err
	}
	return NewBuilder().
		PushOpcode(OpDup).
		PushOpcode(OpHash160).
		PushOpcode(OpData20).
		PushSlice(hash).
		PushOpcode(OpEqualVerify).
		PushOpcode(OpCheckSig).
		Seal()
}

// P2SH builds OP_HASH160 <20-byte hash> OP_EQUAL.
func P2SH(hash []byte) (Script, error) {
	if err := checkLen("p2sh", hash, hash160Size); err != nil {
		return Script{}, err
	}
	return NewBuilder().
		PushOpcode(OpHash160).
		PushOpcode(OpData20).
		PushSlice(hash).
		PushOpcode(OpEqual).
		Seal()
}

// P2WPKH builds the version 0 witness program OP_0 <20-byte hash>.
func P2WPKH(hash []byte) (Script, error) {
	if err := checkLen("p2wpkh", hash, hash160Size); err != nil {
		return Script{}, err
	}
	return NewBuilder().
		PushInt(0).
		PushOpcode(OpData20).
		PushSlice(hash).
		Seal()
}

// P2WSH builds the version 0 witness program OP_0 <32-byte hash>.
func P2WSH(hash []byte) (Script, error) {
	if err := checkLen("p2wsh", hash, witnessHashSize); err != nil {
		return Script{}, err
	}
	return NewBuilder().
		PushInt(0).
		PushOpcode(OpData32).
		PushSlice(hash).
		Seal()
}

// P2TR builds the version 1 witness program OP_1 <32-byte x-only key>.
func P2TR(key []byte) (Script, error) {
	if err := checkLen("p2tr", key, xOnlyKeySize); err != nil {
		return Script{}, err
	}
	return NewBuilder().
		PushInt(1).
		PushOpcode(OpData32).
		PushSlice(key).
		Seal()
}

// NullDataScript builds OP_RETURN followed by a minimal push of data.
func NullDataScript(data []byte) (Script, error) {
	return NewBuilder().
		PushOpcode(OpReturn).
		PushData(data).
		Seal()
}

func checkLen(template string, payload []byte, want int) error {
	if len(payload) != want {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidPayloadLength, template, want, len(payload))
	}
	return nil
}
