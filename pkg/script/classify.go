package script

import "fmt"

// Class identifies which standard template a script matches.
type Class byte

// Classes recognized by Classify.
const (
	NonStandard Class = iota
	PubKeyHash
	ScriptHash
	WitnessV0PubKeyHash
	WitnessV0ScriptHash
	WitnessV1Taproot
	NullData
)

// classNames follow the script type names reported by bitcoind.
var classNames = []string{
	NonStandard:         "nonstandard",
	PubKeyHash:          "pubkeyhash",
	ScriptHash:          "scripthash",
	WitnessV0PubKeyHash: "witness_v0_keyhash",
	WitnessV0ScriptHash: "witness_v0_scripthash",
	WitnessV1Taproot:    "witness_v1_taproot",
	NullData:            "nulldata",
}

// String returns the bitcoind name of the class.
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", byte(c))
	}
	return classNames[c]
}

// Classify matches b against the standard templates and returns the class
// with the payload it carries: the hash for P2PKH, P2SH, P2WPKH and P2WSH, the
// x-only key for P2TR and nothing for null-data. The returned payload aliases
// b. Scripts matching no template fail with ErrUnrecognizedScript.
func Classify(b []byte) (Class, []byte, error) {
	switch {
	case isPubKeyHash(b):
		return PubKeyHash, b[3:23], nil
	case isScriptHash(b):
		return ScriptHash, b[2:22], nil
	case isWitnessProgram(b, Op0, OpData20):
		return WitnessV0PubKeyHash, b[2:22], nil
	case isWitnessProgram(b, Op0, OpData32):
		return WitnessV0ScriptHash, b[2:34], nil
	case isWitnessProgram(b, Op1, OpData32):
		return WitnessV1Taproot, b[2:34], nil
	case len(b) > 0 && Opcode(b[0]) == OpReturn:
		return NullData, nil, nil
	}
	return NonStandard, nil, fmt.Errorf("%w: %d bytes", ErrUnrecognizedScript, len(b))
}

// OP_DUP OP_HASH160 OP_DATA_20 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
func isPubKeyHash(b []byte) bool {
	return len(b) == 25 &&
		Opcode(b[0]) == OpDup &&
		Opcode(b[1]) == OpHash160 &&
		Opcode(b[2]) == OpData20 &&
		Opcode(b[23]) == OpEqualVerify &&
		Opcode(b[24]) == OpCheckSig
}

// OP_HASH160 OP_DATA_20 <20 bytes> OP_EQUAL
func isScriptHash(b []byte) bool {
	return len(b) == 23 &&
		Opcode(b[0]) == OpHash160 &&
		Opcode(b[1]) == OpData20 &&
		Opcode(b[22]) == OpEqual
}

// <version op> <push op> <program>, where the push op also fixes the length.
func isWitnessProgram(b []byte, version, push Opcode) bool {
	return len(b) == 2+int(push) &&
		Opcode(b[0]) == version &&
		Opcode(b[1]) == push
}
