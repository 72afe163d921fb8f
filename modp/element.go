package modp

import (
	"math/big"
	"strings"
)

// Element is a value in [0, p) bound to one Group. Elements are immutable:
// every operation returns a new Element.
type Element struct {
	group *Group
	val   *big.Int
}

// Element returns g^exp mod p.
func (g *Group) Element(exp *big.Int) *Element {
	return &Element{group: g, val: g.Exp(exp)}
}

// ValueOf returns the element whose value is v mod p.
func (g *Group) ValueOf(v *big.Int) *Element {
	return &Element{group: g, val: new(big.Int).Mod(v, g.p)}
}

// Identity returns the element 1.
func (g *Group) Identity() *Element {
	return &Element{group: g, val: big.NewInt(1)}
}

// Generator returns the element g.
func (g *Group) Generator() *Element {
	return &Element{group: g, val: new(big.Int).Set(g.g)}
}

// ParseExponent parses s as an exponent and returns g^s. s is decimal, or
// hexadecimal with a 0x prefix.
func (g *Group) ParseExponent(s string) (*Element, error) {
	e, err := parseNumeral(s)
	if err != nil {
		return nil, err
	}
	return g.Element(e), nil
}

// ParseValue parses s as a raw residue. It inverts Element.String.
func (g *Group) ParseValue(s string) (*Element, error) {
	v, err := parseNumeral(s)
	if err != nil {
		return nil, err
	}
	return g.ValueOf(v), nil
}

// ParseInteger parses a non-negative decimal numeral, or a hexadecimal one
// with a 0x prefix. Failures are *ParseError.
func ParseInteger(s string) (*big.Int, error) {
	return parseNumeral(s)
}

func parseNumeral(s string) (*big.Int, error) {
	repr := strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(repr, "0x") || strings.HasPrefix(repr, "0X") {
		repr = repr[2:]
		base = 16
	}
	if strings.HasPrefix(repr, "+") || strings.HasPrefix(repr, "-") {
		return nil, &ParseError{Input: s, Base: base}
	}
	v, ok := new(big.Int).SetString(repr, base)
	if !ok {
		return nil, &ParseError{Input: s, Base: base}
	}
	return v, nil
}

func (e *Element) check(x *Element) {
	if !e.group.Equal(x.group) {
		panic(ErrGroupMismatch)
	}
}

// Group returns the group the element belongs to.
func (e *Element) Group() *Group {
	return e.group
}

// Value returns a copy of the element's value.
func (e *Element) Value() *big.Int {
	return new(big.Int).Set(e.val)
}

// Add returns e + x mod p.
func (e *Element) Add(x *Element) *Element {
	e.check(x)
	return &Element{group: e.group, val: e.group.Add(e.val, x.val)}
}

// Sub returns e - x mod p.
func (e *Element) Sub(x *Element) *Element {
	e.check(x)
	return &Element{group: e.group, val: e.group.Sub(e.val, x.val)}
}

// Mul returns e * x mod p.
func (e *Element) Mul(x *Element) *Element {
	e.check(x)
	return &Element{group: e.group, val: e.group.Mul(e.val, x.val)}
}

// Pow returns e^exp mod p. Applied to a public value g^a it yields the
// shared value g^(a*exp).
func (e *Element) Pow(exp *big.Int) *Element {
	return &Element{group: e.group, val: e.group.Pow(e.val, exp)}
}

// Equal compares values. It is not constant time.
func (e *Element) Equal(x *Element) bool {
	e.check(x)
	return e.val.Cmp(x.val) == 0
}

func (e *Element) IsIdentity() bool {
	return e.val.Cmp(one) == 0
}

// String returns the decimal value.
func (e *Element) String() string {
	return e.val.String()
}

// Text returns the value in the given base.
func (e *Element) Text(base int) string {
	return e.val.Text(base)
}
