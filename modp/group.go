// Package modp implements Diffie-Hellman arithmetic over multiplicative
// groups of integers modulo a safe prime p = 2q + 1.
//
// A Group is the immutable triple (p, q, g). The RFC 3526 groups are built
// once at init and shared; custom groups come from the factories in
// factory.go, which find a new generator by rejection sampling.
//
// Ring operations (Add, Sub, Mul) work on the whole of [0, p). Pow and
// Exp are the group operations used for key agreement. Nothing here is
// constant time.
package modp

import (
	"fmt"
	"math/big"
	"strings"
)

var one = big.NewInt(1)

// Group is a modular group descriptor: modulus p, prime subgroup order q
// and a generator g of the order-q subgroup.
type Group struct {
	name string
	p    *big.Int
	q    *big.Int
	g    *big.Int
}

// NewGroup returns a descriptor for (p, q, g). The values are copied. No
// validation is done; see Validate.
func NewGroup(name string, p, q, g *big.Int) *Group {
	return &Group{
		name: name,
		p:    new(big.Int).Set(p),
		q:    new(big.Int).Set(q),
		g:    new(big.Int).Set(g),
	}
}

func mustParseHex(s string) *big.Int {
	repr := strings.Join(strings.Fields(s), "")
	v, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("invalid group definition")
	}
	return v
}

func (g *Group) Name() string {
	return g.name
}

// P returns a copy of the modulus.
func (g *Group) P() *big.Int {
	return new(big.Int).Set(g.p)
}

// Q returns a copy of the subgroup order.
func (g *Group) Q() *big.Int {
	return new(big.Int).Set(g.q)
}

// G returns a copy of the generator.
func (g *Group) G() *big.Int {
	return new(big.Int).Set(g.g)
}

// BitLen is the size of the modulus in bits.
func (g *Group) BitLen() int {
	return g.p.BitLen()
}

// Equal reports whether both descriptors have the same p, q and g.
func (g *Group) Equal(h *Group) bool {
	if g == h {
		return true
	}
	if g == nil || h == nil {
		return false
	}
	return g.p.Cmp(h.p) == 0 && g.q.Cmp(h.q) == 0 && g.g.Cmp(h.g) == 0
}

// Add returns (a + b) mod p.
func (g *Group) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, g.p)
}

// Sub returns (a + p - b) mod p. b is reduced first so the result is
// never negative.
func (g *Group) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Mod(b, g.p)
	r.Sub(g.p, r)
	r.Add(r, a)
	return r.Mod(r, g.p)
}

// Mul returns (a * b) mod p.
func (g *Group) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, g.p)
}

// Pow returns a^e mod p. A negative e is taken mod q, which is exact for
// members of the order-q subgroup.
func (g *Group) Pow(a, e *big.Int) *big.Int {
	if e.Sign() < 0 {
		e = new(big.Int).Mod(e, g.q)
	}
	return new(big.Int).Exp(a, e, g.p)
}

// Exp returns g^e mod p, the value of the group element for exponent e.
func (g *Group) Exp(e *big.Int) *big.Int {
	return g.Pow(g.g, e)
}

// Contains reports whether v^q = 1 mod p, i.e. v lies in the order-q
// subgroup.
func (g *Group) Contains(v *big.Int) bool {
	if v.Sign() <= 0 || v.Cmp(g.p) >= 0 {
		return false
	}
	return g.Pow(v, g.q).Cmp(one) == 0
}

// Validate checks the descriptor invariants: q = (p - 1) / 2, 1 < g < p
// and g^q = 1 mod p. Primality is checked only when checkPrimes is set
// since it dominates the cost for the large groups.
func (g *Group) Validate(checkPrimes bool) error {
	want := new(big.Int).Sub(g.p, one)
	want.Rsh(want, 1)
	if g.q.Cmp(want) != 0 {
		return fail(ErrInvalidGroup, "%s: q != (p-1)/2", g.name)
	}
	if g.g.Cmp(one) <= 0 || g.g.Cmp(g.p) >= 0 {
		return fail(ErrInvalidGroup, "%s: generator out of range", g.name)
	}
	if !g.Contains(g.g) {
		return fail(ErrInvalidGroup, "%s: g^q != 1 mod p", g.name)
	}
	if checkPrimes {
		if _, ok := IsSafePrime(g.p); !ok {
			return fail(ErrInvalidPrime, "%s", g.name)
		}
	}
	return nil
}

func (g *Group) String() string {
	if g.name != "" {
		return fmt.Sprintf("%s(%d bits, g=%s)", g.name, g.p.BitLen(), g.g.String())
	}
	return fmt.Sprintf("modp(%d bits, g=%s)", g.p.BitLen(), g.g.String())
}
