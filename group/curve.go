package group

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

type curveGroup struct {
	curve      circl.Group
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type curvePoint struct {
	curve *curveGroup
	val   circl.Element
}

func (g *curveGroup) Name() string {
	return g.name
}

func (g *curveGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *curveGroup) N() *big.Int {
	return g.curveOrder
}

func (g *curveGroup) Generator() Element {
	return &curvePoint{
		curve: g,
		val:   g.curve.Generator(),
	}
}

func (g *curveGroup) Identity() Element {
	return &curvePoint{
		curve: g,
		val:   g.curve.Identity(),
	}
}

func (g *curveGroup) Random() Element {
	return &curvePoint{
		curve: g,
		val:   g.curve.RandomElement(rand.Reader),
	}
}

func (g *curveGroup) Element() Element {
	return &curvePoint{
		curve: g,
		val:   g.curve.NewElement(),
	}
}

func (g *curveGroup) scalar(s *big.Int) circl.Scalar {
	k := new(big.Int).Mod(s, g.curveOrder)
	return g.curve.NewScalar().SetBigInt(k)
}

func (e *curvePoint) check(a Element) *curvePoint {
	ey, ok := a.(*curvePoint)
	if !ok {
		panic("incompatible group element type")
	}
	if e.curve.name != ey.curve.name {
		panic("incompatible groups")
	}
	return ey
}

func (e *curvePoint) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = e.curve.curve.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *curvePoint) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *curvePoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val = e.curve.curve.NewElement().Neg(ca.val)
	return e
}

func (e *curvePoint) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.IsEqual(cb.val)
}

func (e *curvePoint) Set(x Element) Element {
	ca := e.check(x)
	e.val = e.curve.curve.NewElement().Set(ca.val)
	return e
}

func (e *curvePoint) Scale(x Element, s *big.Int) Element {
	ex := e.check(x)
	e.val = e.curve.curve.NewElement().Mul(ex.val, e.curve.scalar(s))
	return e
}

func (e *curvePoint) BaseScale(s *big.Int) Element {
	e.val = e.curve.curve.NewElement().MulGen(e.curve.scalar(s))
	return e
}

func (e *curvePoint) GroupOrder() *big.Int {
	return e.curve.curveOrder
}

func (e *curvePoint) FieldOrder() *big.Int {
	return e.curve.fieldOrder
}

func (e *curvePoint) String() string {
	tmp, err := e.val.MarshalBinary()
	if err != nil {
		return "<invalid point>"
	}
	return hex.EncodeToString(tmp)
}

func (e *curvePoint) IsIdentity() bool {
	return e.val.IsIdentity()
}

func newCurveGroup(name string, curve circl.Group, p, n string) Group {
	fieldOrder, _ := new(big.Int).SetString(p, 16)
	curveOrder, _ := new(big.Int).SetString(n, 16)

	G := new(curveGroup)
	G.curve = curve
	G.fieldOrder = fieldOrder
	G.curveOrder = curveOrder
	G.name = name
	return G
}

func P256() Group {
	return newCurveGroup("P-256", circl.P256,
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
}

func P384() Group {
	return newCurveGroup("P-384", circl.P384,
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
		"ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973")
}

func Ristretto255() Group {
	return newCurveGroup("ristretto255", circl.Ristretto255,
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed",
		"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")
}
