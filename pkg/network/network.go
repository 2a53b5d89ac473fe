// Package network holds the per-network address parameters used by the
// address codec.
package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// ErrUnknownNetwork is returned for networks missing from a Registry or
// names Parse does not recognize.
var ErrUnknownNetwork = errors.New("unknown network")

// Network names a Bitcoin network. The set is open: callers may register
// additional networks in their own Registry.
type Network string

// Networks known to DefaultRegistry.
const (
	Main    Network = "main"
	Test    Network = "test"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)

func (n Network) String() string {
	return string(n)
}

// Parse resolves a user supplied network name, accepting the aliases
// bitcoind and btcd use.
func Parse(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "mainnet", "bitcoin":
		return Main, nil
	case "test", "testnet", "testnet3":
		return Test, nil
	case "signet":
		return Signet, nil
	case "regtest":
		return Regtest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
}

// Params are the address encoding parameters of one network.
type Params struct {
	Network          Network
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	Bech32HRP        string
}

// FromChainParams copies the address parameters out of btcd chain params.
func FromChainParams(n Network, p *chaincfg.Params) Params {
	return Params{
		Network:          n,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		Bech32HRP:        p.Bech32HRPSegwit,
	}
}

// Registry is an ordered set of network parameters. Lookups that match more
// than one network return the one registered first.
type Registry struct {
	params []Params
}

// NewRegistry returns a registry holding params in the given order. A later
// entry for an already registered network replaces the earlier one in place.
func NewRegistry(params ...Params) *Registry {
	r := &Registry{}
	for _, p := range params {
		r.Register(p)
	}
	return r
}

// DefaultRegistry returns a fresh registry with main, test, signet and
// regtest, in that order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		FromChainParams(Main, &chaincfg.MainNetParams),
		FromChainParams(Test, &chaincfg.TestNet3Params),
		FromChainParams(Signet, &chaincfg.SigNetParams),
		FromChainParams(Regtest, &chaincfg.RegressionNetParams),
	)
}

// Register adds p, replacing any entry for the same network.
func (r *Registry) Register(p Params) {
	i := slices.IndexFunc(r.params, func(q Params) bool { return q.Network == p.Network })
	if i >= 0 {
		r.params[i] = p
		return
	}
	r.params = append(r.params, p)
}

// Params returns the parameters of n.
func (r *Registry) Params(n Network) (Params, error) {
	for _, p := range r.params {
		if p.Network == n {
			return p, nil
		}
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, n)
}

// Networks lists the registered networks in registration order.
func (r *Registry) Networks() []Network {
	out := make([]Network, 0, len(r.params))
	for _, p := range r.params {
		out = append(out, p.Network)
	}
	return out
}

// ByPubKeyHashID returns the first network whose pay-to-pubkey-hash version
// byte is id.
func (r *Registry) ByPubKeyHashID(id byte) (Params, bool) {
	return r.find(func(p Params) bool { return p.PubKeyHashAddrID == id })
}

// ByScriptHashID returns the first network whose pay-to-script-hash version
// byte is id.
func (r *Registry) ByScriptHashID(id byte) (Params, bool) {
	return r.find(func(p Params) bool { return p.ScriptHashAddrID == id })
}

// ByHRP returns the first network using the bech32 human readable part hrp.
// The match is exact; callers normalize case.
func (r *Registry) ByHRP(hrp string) (Params, bool) {
	return r.find(func(p Params) bool { return p.Bech32HRP == hrp })
}

func (r *Registry) find(match func(Params) bool) (Params, bool) {
	for _, p := range r.params {
		if match(p) {
			return p, true
		}
	}
	return Params{}, false
}
