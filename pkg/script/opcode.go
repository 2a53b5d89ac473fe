package script

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// Opcode is a single script opcode byte.
type Opcode byte

// Opcodes used by the standard templates and the push rules.
const (
	Op0           Opcode = txscript.OP_0
	OpData1       Opcode = txscript.OP_DATA_1
	OpData20      Opcode = txscript.OP_DATA_20
	OpData32      Opcode = txscript.OP_DATA_32
	OpData75      Opcode = txscript.OP_DATA_75
	OpPushData1   Opcode = txscript.OP_PUSHDATA1
	OpPushData2   Opcode = txscript.OP_PUSHDATA2
	OpPushData4   Opcode = txscript.OP_PUSHDATA4
	Op1Negate     Opcode = txscript.OP_1NEGATE
	Op1           Opcode = txscript.OP_1
	Op16          Opcode = txscript.OP_16
	OpReturn      Opcode = txscript.OP_RETURN
	OpDup         Opcode = txscript.OP_DUP
	OpEqual       Opcode = txscript.OP_EQUAL
	OpEqualVerify Opcode = txscript.OP_EQUALVERIFY
	OpHash160     Opcode = txscript.OP_HASH160
	OpCheckSig    Opcode = txscript.OP_CHECKSIG
)

// minimal push lengths for the PUSHDATA forms; anything shorter fits a
// smaller opcode.
const (
	minPushData1Len = int(OpData75) + 1
	minPushData2Len = 0x100
	minPushData4Len = 0x10000
)

func (Opcode) isInstruction() {}

// IsDataPush reports whether op is OP_0 or one of OP_DATA_1..OP_DATA_75, the
// opcodes that encode their push length in the opcode value itself.
func (op Opcode) IsDataPush() bool {
	return op <= OpData75
}

// IsSmallInt reports whether op pushes a small integer (OP_1NEGATE,
// OP_1..OP_16).
func (op Opcode) IsSmallInt() bool {
	return op == Op1Negate || (op >= Op1 && op <= Op16)
}

// String renders op with the name txscript uses for disassembly.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN%d", byte(op))
}

var opcodeNames = buildOpcodeNames()

// buildOpcodeNames inverts txscript.OpcodeByName, skipping the aliases it
// registers on top of the canonical names.
func buildOpcodeNames() map[Opcode]string {
	aliases := map[string]struct{}{
		"OP_FALSE": {},
		"OP_TRUE":  {},
		"OP_NOP2":  {},
		"OP_NOP3":  {},
	}
	names := make(map[Opcode]string, len(txscript.OpcodeByName))
	for name, value := range txscript.OpcodeByName {
		if _, ok := aliases[name]; ok {
			continue
		}
		names[Opcode(value)] = name
	}
	return names
}
