package script

import "errors"

var (
	// ErrUnsupportedPushInt is returned by Builder.PushInt for values outside
	// -1..16.
	ErrUnsupportedPushInt = errors.New("unsupported push integer")
	// ErrInvalidPayloadLength is returned by the template constructors when
	// the hash or key has the wrong size.
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	// ErrBuilderSealed is returned when a builder is used after Seal.
	ErrBuilderSealed = errors.New("script builder already sealed")
	// ErrDataTooLarge is returned by Builder.PushData for pushes that no
	// PUSHDATA form can encode.
	ErrDataTooLarge = errors.New("push data too large")

	// ErrNonMinimalPush is returned when a push could have used a shorter
	// opcode and minimal pushes are enforced.
	ErrNonMinimalPush = errors.New("non-minimal data push")
	// ErrEarlyEndOfScript is returned when a push runs past the end of the
	// script.
	ErrEarlyEndOfScript = errors.New("unexpected end of script")
	// ErrNumericOverflow is returned when a PUSHDATA length cannot be
	// represented.
	ErrNumericOverflow = errors.New("push length overflow")

	// ErrUnrecognizedScript is returned by Classify for scripts that match
	// none of the known templates.
	ErrUnrecognizedScript = errors.New("unrecognized script")
)
