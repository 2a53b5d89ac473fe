package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/script"
)

const (
	maxBase58Len  = 50
	checksumLen   = 4
	base58Payload = 1 + 20
)

// Codec parses and formats addresses for the networks of one registry.
type Codec struct {
	reg *network.Registry
}

// NewCodec returns a codec over reg.
func NewCodec(reg *network.Registry) *Codec {
	return &Codec{reg: reg}
}

// Decode parses base58check and bech32/bech32m address text.
func (c *Codec) Decode(s string) (Address, error) {
	if p, ok := c.segwitParams(s); ok {
		return c.decodeSegwit(s, p)
	}
	return c.decodeBase58(s)
}

// Encode formats a as address text.
func (c *Codec) Encode(a Address) (string, error) {
	p, err := c.reg.Params(a.network)
	if err != nil {
		return "", err
	}
	switch pl := a.payload.(type) {
	case PubkeyHash:
		return base58.CheckEncode(pl[:], p.PubKeyHashAddrID), nil
	case ScriptHash:
		return base58.CheckEncode(pl[:], p.ScriptHashAddrID), nil
	case WitnessProgram:
		return encodeSegwit(p.Bech32HRP, pl)
	default:
		return "", fmt.Errorf("unsupported payload %T", a.payload)
	}
}

// FromScript returns the address s pays to on net.
func (c *Codec) FromScript(s script.Script, net network.Network) (Address, error) {
	if _, err := c.reg.Params(net); err != nil {
		return Address{}, err
	}
	payload, err := payloadFromScript(s)
	if err != nil {
		return Address{}, err
	}
	return Address{network: net, payload: payload}, nil
}

// segwitParams picks the network whose bech32 prefix precedes the last '1'
// of s. The prefix must be all lower or all upper case.
func (c *Codec) segwitParams(s string) (network.Params, bool) {
	i := strings.LastIndexByte(s, '1')
	if i < 1 {
		return network.Params{}, false
	}
	hrp := s[:i]
	lower := strings.ToLower(hrp)
	if hrp != lower && hrp != strings.ToUpper(hrp) {
		return network.Params{}, false
	}
	return c.reg.ByHRP(lower)
}

func (c *Codec) decodeSegwit(s string, p network.Params) (Address, error) {
	_, data, variant, err := bech32.DecodeGeneric(s)
	if err != nil {
		var checksumErr bech32.ErrInvalidChecksum
		if errors.As(err, &checksumErr) {
			return Address{}, fmt.Errorf("%w: %w", ErrInvalidChecksum, err)
		}
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidBech32, err)
	}
	if len(data) == 0 {
		return Address{}, fmt.Errorf("%w: empty data part", ErrInvalidBech32)
	}

	version := WitnessVersion(data[0])
	if version != WitnessV0 && version != WitnessV1 {
		return Address{}, fmt.Errorf("%w: %d", ErrUnsupportedWitnessVersion, version)
	}
	if want := checksumVariant(version); variant != want {
		return Address{}, fmt.Errorf("%w: witness version %d needs %s", ErrInvalidChecksum, version, variantName(want))
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidBech32, err)
	}
	if err := checkWitnessProgram(version, len(program)); err != nil {
		return Address{}, err
	}
	return Address{network: p.Network, payload: WitnessProgram{Version: version, Program: program}}, nil
}

func (c *Codec) decodeBase58(s string) (Address, error) {
	if len(s) > maxBase58Len {
		return Address{}, fmt.Errorf("%w: %d characters", ErrTooLong, len(s))
	}
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidBase58, s)
	}
	if len(raw) <= checksumLen {
		return Address{}, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(raw))
	}

	payload, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:checksumLen], sum) {
		return Address{}, ErrInvalidChecksum
	}
	if len(payload) != base58Payload {
		return Address{}, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(payload))
	}

	version, hash := payload[0], [20]byte(payload[1:])
	if p, ok := c.reg.ByPubKeyHashID(version); ok {
		return Address{network: p.Network, payload: PubkeyHash(hash)}, nil
	}
	if p, ok := c.reg.ByScriptHashID(version); ok {
		return Address{network: p.Network, payload: ScriptHash(hash)}, nil
	}
	return Address{}, fmt.Errorf("%w: %#02x", ErrUnknownVersion, version)
}

func encodeSegwit(hrp string, wp WitnessProgram) (string, error) {
	if err := checkWitnessProgram(wp.Version, len(wp.Program)); err != nil {
		return "", err
	}
	conv, err := bech32.ConvertBits(wp.Program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := append([]byte{byte(wp.Version)}, conv...)
	if checksumVariant(wp.Version) == bech32.Version0 {
		return bech32.Encode(hrp, data)
	}
	return bech32.EncodeM(hrp, data)
}

func checksumVariant(v WitnessVersion) bech32.Version {
	if v == WitnessV0 {
		return bech32.Version0
	}
	return bech32.VersionM
}

func variantName(v bech32.Version) string {
	if v == bech32.Version0 {
		return "bech32"
	}
	return "bech32m"
}

// Decode parses s against the default networks.
func Decode(s string) (Address, error) {
	return NewCodec(network.DefaultRegistry()).Decode(s)
}

// Encode formats a against the default networks.
func Encode(a Address) (string, error) {
	return NewCodec(network.DefaultRegistry()).Encode(a)
}

// FromScript returns the address s pays to on net, using the default networks.
func FromScript(s script.Script, net network.Network) (Address, error) {
	return NewCodec(network.DefaultRegistry()).FromScript(s, net)
}
