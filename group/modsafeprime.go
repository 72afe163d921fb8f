package group

import (
	"crypto/rand"
	"math/big"

	"github.com/AlvinHon/diffie-hellman-groups/modp"
)

// Multiplicative groups of the RFC 3526 safe primes, restricted to the
// order-q subgroup generated by 2.
var (
	RFC3526ModPGroup1536 = ModP(modp.MODP1536)
	RFC3526ModPGroup2048 = ModP(modp.MODP2048)
	RFC3526ModPGroup3072 = ModP(modp.MODP3072)
	RFC3526ModPGroup4096 = ModP(modp.MODP4096)
	RFC3526ModPGroup6144 = ModP(modp.MODP6144)
	RFC3526ModPGroup8192 = ModP(modp.MODP8192)
)

type ModPElement struct {
	group *ModPGroup
	val   *big.Int
}

// ModPGroup adapts a modp.Group to the Group interface. The group
// operation is multiplication mod p and the order is q.
type ModPGroup struct {
	desc *modp.Group
}

// ModP wraps desc, which may be a standard group or one built by the modp
// factories.
func ModP(desc *modp.Group) *ModPGroup {
	return &ModPGroup{desc: desc}
}

// Descriptor returns the underlying modp group.
func (g *ModPGroup) Descriptor() *modp.Group {
	return g.desc
}

func (g *ModPGroup) Name() string {
	return g.desc.Name()
}

func (g *ModPGroup) equals(h *ModPGroup) bool {
	return g == h || g.desc.Equal(h.desc)
}

func (g *ModPGroup) P() *big.Int {
	return g.desc.P()
}

func (g *ModPGroup) N() *big.Int {
	return g.desc.Q()
}

func (g *ModPGroup) Generator() Element {
	return &ModPElement{
		group: g,
		val:   g.desc.G(),
	}
}

func (g *ModPGroup) Identity() Element {
	return &ModPElement{
		group: g,
		val:   big.NewInt(1),
	}
}

func (g *ModPGroup) Random() Element {
	return randomElement(rand.Reader, g)
}

func (g *ModPGroup) Element() Element {
	return g.Identity()
}

// ElementOf wraps a modp element of the same descriptor.
func (g *ModPGroup) ElementOf(v *modp.Element) *ModPElement {
	if !g.desc.Equal(v.Group()) {
		panic(modp.ErrGroupMismatch)
	}
	return &ModPElement{group: g, val: v.Value()}
}

func (e *ModPElement) check(a Element) *ModPElement {
	ey, ok := a.(*ModPElement)
	if !ok {
		panic("incompatible group element type")
	}
	if !e.group.equals(ey.group) {
		panic(modp.ErrGroupMismatch)
	}
	return ey
}

func (e *ModPElement) Add(a Element, b Element) Element {
	ex := e.check(a)
	ey := e.check(b)
	e.val = e.group.desc.Mul(ex.val, ey.val)
	return e
}

func (e *ModPElement) Subtract(a Element, b Element) Element {
	tmp := e.group.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *ModPElement) Negate(a Element) Element {
	ex := e.check(a)
	e.val = new(big.Int).ModInverse(ex.val, e.group.desc.P())
	return e
}

func (e *ModPElement) IsEqual(b Element) bool {
	ey := e.check(b)
	return e.val.Cmp(ey.val) == 0
}

func (e *ModPElement) Set(a Element) Element {
	ex := e.check(a)
	e.val = new(big.Int).Set(ex.val)
	return e
}

// Scale raises X to s. Negative s is taken mod q, which is exact for
// members of the order-q subgroup.
func (e *ModPElement) Scale(a Element, s *big.Int) Element {
	ex := e.check(a)
	e.val = e.group.desc.Pow(ex.val, e.exponent(s))
	return e
}

func (e *ModPElement) BaseScale(s *big.Int) Element {
	e.val = e.group.desc.Exp(e.exponent(s))
	return e
}

func (e *ModPElement) exponent(s *big.Int) *big.Int {
	if s.Sign() >= 0 {
		return s
	}
	return new(big.Int).Mod(s, e.group.desc.Q())
}

func (e *ModPElement) GroupOrder() *big.Int {
	return e.group.desc.Q()
}

func (e *ModPElement) FieldOrder() *big.Int {
	return e.group.desc.P()
}

func (e *ModPElement) String() string {
	return e.val.String()
}

func (e *ModPElement) IsIdentity() bool {
	return e.val.Cmp(big.NewInt(1)) == 0
}

// Value returns the residue as a modp.Element of the wrapped group.
func (e *ModPElement) Value() *modp.Element {
	return e.group.desc.ValueOf(e.val)
}
