package address

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-codec/pkg/network"
)

var (
	ErrTooLong                     = errors.New("base58 address too long")
	ErrInvalidBase58               = errors.New("invalid base58 encoding")
	ErrInvalidBech32               = errors.New("invalid bech32 encoding")
	ErrInvalidChecksum             = errors.New("invalid checksum")
	ErrInvalidLength               = errors.New("invalid payload length")
	ErrUnknownVersion              = errors.New("unknown address version byte")
	ErrUnsupportedWitnessVersion   = errors.New("unsupported witness version")
	ErrInvalidWitnessProgramLength = errors.New("invalid witness program length")
	ErrNotAddressable              = errors.New("script has no address form")

	// ErrUnknownNetwork is network.ErrUnknownNetwork, re-exported so callers
	// of this package can match it without importing network.
	ErrUnknownNetwork = network.ErrUnknownNetwork
)
