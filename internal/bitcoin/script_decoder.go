package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-codec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/address"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
)

// scriptDecoder renders scripts and addresses for one network.
type scriptDecoder struct {
	codec   *address.Codec
	network network.Network
}

// NewScriptDecoder initializes a decoder for the given network of reg.
func NewScriptDecoder(reg *network.Registry, net network.Network) (ScriptDecoder, error) {
	if _, err := reg.Params(net); err != nil {
		return nil, err
	}
	return &scriptDecoder{codec: address.NewCodec(reg), network: net}, nil
}

// DecodeScript never fails: unrecognized scripts are reported as
// nonstandard, and a malformed push leaves "[error]" in the asm.
func (d *scriptDecoder) DecodeScript(s script.Script) model.Script {
	asm, _ := s.Disasm()
	out := model.Script{
		Network: d.network.String(),
		Hex:     s.String(),
		Asm:     asm,
	}

	class, payload, err := s.Classify()
	out.Type = class.String()
	if err != nil {
		return out
	}
	if len(payload) > 0 {
		out.Payload = hex.EncodeToString(payload)
	}

	addr, err := d.codec.FromScript(s, d.network)
	if err != nil {
		return out
	}
	if text, err := d.codec.Encode(addr); err == nil {
		out.Address = text
	}
	return out
}

func (d *scriptDecoder) DecodeAddress(text string) (model.Address, error) {
	addr, err := d.codec.Decode(text)
	if err != nil {
		return model.Address{}, fmt.Errorf("decode address %q: %w", text, err)
	}
	s, err := addr.Script()
	if err != nil {
		return model.Address{}, fmt.Errorf("address %q script: %w", text, err)
	}
	asm, err := s.Disasm()
	if err != nil {
		return model.Address{}, fmt.Errorf("address %q disasm: %w", text, err)
	}

	return model.Address{
		Address:   text,
		Network:   addr.Network().String(),
		Type:      addr.Kind().String(),
		Payload:   payloadHex(addr.Payload()),
		ScriptHex: s.String(),
		ScriptAsm: asm,
	}, nil
}

func payloadHex(p address.Payload) string {
	switch p := p.(type) {
	case address.PubkeyHash:
		return hex.EncodeToString(p[:])
	case address.ScriptHash:
		return hex.EncodeToString(p[:])
	case address.WitnessProgram:
		return hex.EncodeToString(p.Program)
	default:
		return ""
	}
}
