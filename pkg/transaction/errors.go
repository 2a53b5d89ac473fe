package transaction

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated matches every *TruncatedError.
	ErrTruncated     = errors.New("transaction truncated")
	ErrInvalidFlag   = errors.New("invalid segwit flag")
	ErrTrailingBytes = errors.New("trailing bytes after locktime")
	// ErrSuperfluousWitness is returned for a segwit-flagged transaction
	// whose witness stacks are all empty.
	ErrSuperfluousWitness = errors.New("superfluous witness record")
)

// TruncatedError reports the decode step that ran out of bytes.
type TruncatedError struct {
	At string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s at %s", ErrTruncated, e.At)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

func truncated(at string) error {
	return &TruncatedError{At: at}
}
