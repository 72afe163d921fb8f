package modp

import (
	stderrors "errors"
	"fmt"

	"github.com/go-errors/errors"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = stderrors.New("modp: malformed numeral")
	// ErrInvalidBitLength reports a generator size outside [2, bitlen(q)].
	ErrInvalidBitLength = stderrors.New("modp: invalid generator bit length")
	// ErrInvalidPrime reports a custom modulus that is not a safe prime.
	ErrInvalidPrime = stderrors.New("modp: modulus is not a safe prime")
	// ErrSearchExhausted reports that the trial cap was reached before a
	// qualifying generator was drawn. It points at a broken random source.
	ErrSearchExhausted = stderrors.New("modp: generator search exhausted")
	// ErrUnknownGroup is returned by the standard group lookups.
	ErrUnknownGroup = stderrors.New("modp: unknown standard group")
	// ErrInvalidGroup reports a descriptor that breaks q = (p-1)/2 or
	// does not carry an order-q generator.
	ErrInvalidGroup = stderrors.New("modp: invalid group descriptor")
	// ErrGroupMismatch is the panic value raised when elements of
	// different groups are combined.
	ErrGroupMismatch = stderrors.New("modp: incompatible groups")
)

// ParseError describes a numeral that could not be parsed.
type ParseError struct {
	Input string
	Base  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("modp: cannot parse %q as a base-%d integer", e.Input, e.Base)
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// fail wraps a sentinel with context and a stack trace.
func fail(sentinel error, format string, args ...interface{}) error {
	return errors.WrapPrefix(sentinel, fmt.Sprintf(format, args...), 1)
}
