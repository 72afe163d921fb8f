package group

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// Element represents an element of a prime-order group.
type Element interface {
	// Add performs the group operation on X and Y, sets the receiver to
	// the result, and returns it. For a multiplicative group this is X*Y.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to the inverse of X, and returns it.
	Negate(X Element) Element
	// Scale performs the group operation s times with X,
	// sets the receiver to the result, and returns it.
	Scale(X Element, s *big.Int) Element
	// BaseScale performs the group operation s times with the
	// group's generator, sets the receiver to the result, and returns it.
	BaseScale(s *big.Int) Element
	// Set the receiver to X, and returns it.
	Set(X Element) Element
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the group's
	// identity element.
	IsIdentity() bool
	// GroupOrder returns the number of elements in the group.
	GroupOrder() *big.Int
	// FieldOrder returns the number of elements in the field
	// over which the group is defined.
	FieldOrder() *big.Int
	// String returns a printable representation of the element.
	String() string
}

// Group represents a prime-order group over a prime-order field.
// The group can be either multiplicative or additive.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new group element.
	Element() Element
	// Generator creates a group element set to the group's generator.
	Generator() Element
	// Identity creates a group element set to the group's identity element.
	Identity() Element

	// Random returns uniformly sampled element from the group by sampling a
	// random scalar r and returning rG.
	Random() Element

	// P returns the prime-order of the field.
	P() *big.Int
	// N returns the prime-order of the group.
	N() *big.Int
}

var errZeroOrder = errors.New("group: order must be positive")

// RandomScalar samples s uniformly from [1, N) using r.
func RandomScalar(r io.Reader, g Group) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}
	n := g.N()
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, errZeroOrder
	}
	bound := new(big.Int).Sub(n, big.NewInt(1))
	s, err := rand.Int(r, bound)
	if err != nil {
		return nil, err
	}
	return s.Add(s, big.NewInt(1)), nil
}

// randomElement panics if reading r fails, as Random has no error return.
func randomElement(r io.Reader, g Group) Element {
	s, err := RandomScalar(r, g)
	if err != nil {
		panic("group: sampling random scalar: " + err.Error())
	}
	return g.Element().BaseScale(s)
}
