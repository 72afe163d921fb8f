package group

import (
	"crypto/rand"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
)

type secp256k1Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type secp256k1Point struct {
	curve *secp256k1Group
	val   *p256.P256
}

func (g *secp256k1Group) Name() string {
	return g.name
}

func (g *secp256k1Group) P() *big.Int {
	return g.fieldOrder
}

func (g *secp256k1Group) N() *big.Int {
	return g.curveOrder
}

func (g *secp256k1Group) Generator() Element {
	return &secp256k1Point{
		curve: g,
		val:   new(p256.P256).ScalarBaseMult(big.NewInt(1)),
	}
}

func (g *secp256k1Group) Identity() Element {
	return &secp256k1Point{
		curve: g,
		val:   new(p256.P256).SetInfinity(),
	}
}

func (g *secp256k1Group) Random() Element {
	return randomElement(rand.Reader, g)
}

func (g *secp256k1Group) Element() Element {
	return g.Identity()
}

func (e *secp256k1Point) check(a Element) *secp256k1Point {
	ey, ok := a.(*secp256k1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

// Add handles doubling and P + (-P) itself; the underlying affine
// addition expects distinct x coordinates.
func (e *secp256k1Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	switch {
	case ca.IsIdentity():
		return e.Set(cb)
	case cb.IsIdentity():
		return e.Set(ca)
	case ca.val.X.Cmp(cb.val.X) == 0:
		if ca.val.Y.Cmp(cb.val.Y) == 0 {
			e.val = new(p256.P256).ScalarMult(ca.val, big.NewInt(2))
		} else {
			e.val = new(p256.P256).SetInfinity()
		}
		return e
	}
	e.val = new(p256.P256).Multiply(ca.val, cb.val)
	return e
}

func (e *secp256k1Point) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *secp256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	if ca.IsIdentity() {
		e.val = new(p256.P256).SetInfinity()
		return e
	}
	e.val = &p256.P256{
		X: new(big.Int).Set(ca.val.X),
		Y: new(big.Int).Sub(e.curve.fieldOrder, ca.val.Y),
	}
	return e
}

// isZero treats both nil and (0, 0) coordinates as the point at infinity.
func isZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}

func (e *secp256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	if e.IsIdentity() || cb.IsIdentity() {
		return e.IsIdentity() && cb.IsIdentity()
	}
	return e.val.X.Cmp(cb.val.X) == 0 && e.val.Y.Cmp(cb.val.Y) == 0
}

func (e *secp256k1Point) Set(a Element) Element {
	ca := e.check(a)
	if ca.IsIdentity() {
		e.val = new(p256.P256).SetInfinity()
		return e
	}
	e.val = &p256.P256{
		X: new(big.Int).Set(ca.val.X),
		Y: new(big.Int).Set(ca.val.Y),
	}
	return e
}

func (e *secp256k1Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	k := new(big.Int).Mod(s, e.curve.curveOrder)
	if ca.IsIdentity() || k.Sign() == 0 {
		e.val = new(p256.P256).SetInfinity()
		return e
	}
	e.val = new(p256.P256).ScalarMult(ca.val, k)
	return e
}

func (e *secp256k1Point) BaseScale(s *big.Int) Element {
	k := new(big.Int).Mod(s, e.curve.curveOrder)
	if k.Sign() == 0 {
		e.val = new(p256.P256).SetInfinity()
		return e
	}
	e.val = new(p256.P256).ScalarBaseMult(k)
	return e
}

func (e *secp256k1Point) GroupOrder() *big.Int {
	return e.curve.curveOrder
}

func (e *secp256k1Point) FieldOrder() *big.Int {
	return e.curve.fieldOrder
}

func (e *secp256k1Point) String() string {
	return e.val.String()
}

func (e *secp256k1Point) IsIdentity() bool {
	return isZero(e.val.X) && isZero(e.val.Y)
}

// SecP256k1 is secp256k1 backed by the zkrp curve arithmetic.
func SecP256k1() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	G := new(secp256k1Group)
	G.fieldOrder = p
	G.curveOrder = n
	G.name = "secp256k1"
	return G
}
