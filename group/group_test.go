package group

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allGroups = []Group{
	RFC3526ModPGroup1536,
	RFC3526ModPGroup2048,
	SecP256k1(),
	P256(),
	P384(),
	Ristretto255(),
}

func TestGroup(t *testing.T) {
	const testTimes = 1 << 4
	for _, g := range allGroups {
		n := g.Name()
		t.Run(n+"/Neg", func(tt *testing.T) { testNeg(tt, testTimes, g) })
		t.Run(n+"/Order", func(tt *testing.T) { testOrder(tt, testTimes, g) })
		t.Run(n+"/Set", func(tt *testing.T) { testSet(tt, g) })
		t.Run(n+"/Math", func(tt *testing.T) { testMath(tt, g) })
		t.Run(n+"/Exchange", func(tt *testing.T) { testExchange(tt, testTimes, g) })
	}
}

func testNeg(t *testing.T, testTimes int, g Group) {
	Q := g.Element()
	for i := 0; i < testTimes; i++ {
		P := g.Random()
		Q.Set(P)
		Q.Subtract(Q, P)
		if !Q.IsIdentity() {
			t.Error("testNeg | Got:", Q, "Wanted identity")
		}
	}
}

func testOrder(t *testing.T, testTimes int, g Group) {
	I := g.Identity()
	Q := g.Element()
	minusOne := big.NewInt(-1)
	for i := 0; i < testTimes; i++ {
		P := g.Random()

		Q.Scale(P, minusOne)
		got := Q.Add(Q, P)
		if !got.IsEqual(I) {
			t.Error("testOrder | Got:", got, "Wanted:", I)
		}

		R := g.Element().Scale(P, g.N())
		if !R.IsIdentity() {
			t.Error("testOrder | P^N is not the identity")
		}
	}
}

func testSet(t *testing.T, g Group) {
	P := g.Random()
	Q := g.Element()
	Q.Set(P)
	if !Q.IsEqual(P) {
		t.Error("testSet | Got:", false, "Wanted:", true)
	}
}

func testMath(t *testing.T, g Group) {
	a := g.Element().BaseScale(big.NewInt(2))
	b := g.Element().Add(g.Generator(), g.Generator())
	if !a.IsEqual(b) {
		t.Error("doubling error")
	}

	a = g.Element().Add(a, g.Generator())
	b = g.Element().BaseScale(big.NewInt(3))
	if !a.IsEqual(b) {
		t.Error("error in adding or scaling")
	}

	e := g.Identity()
	r1 := g.Random()
	r2 := g.Random()
	e.Add(r1, r2)
	e.Subtract(e, r2)
	if !e.IsEqual(r1) {
		t.Error("error in subtracting")
	}
}

func testExchange(t *testing.T, testTimes int, g Group) {
	for i := 0; i < testTimes; i++ {
		a, err := RandomScalar(nil, g)
		require.NoError(t, err)
		b, err := RandomScalar(nil, g)
		require.NoError(t, err)

		A := g.Element().BaseScale(a)
		B := g.Element().BaseScale(b)
		s := g.Element().Scale(B, a)
		z := g.Element().Scale(A, b)
		assert.True(t, s.IsEqual(z), "g^ab != g^ba")

		ab := new(big.Int).Mul(a, b)
		assert.True(t, s.IsEqual(g.Element().BaseScale(ab)))
	}
}

func TestNewElements(t *testing.T) {
	els := []struct {
		name string
		el   func(Group) Element
	}{
		{"identity", func(g Group) Element { return g.Identity() }},
		{"generator", func(g Group) Element { return g.Generator() }},
		{"random", func(g Group) Element { return g.Random() }},
	}

	for _, g := range allGroups {
		for _, e := range els {
			t.Run(fmt.Sprintf("%s-%s", g.Name(), e.name), func(t *testing.T) {
				x := e.el(g)
				if x == nil {
					t.Error("new element")
				}
				if e.name == "identity" && !x.IsIdentity() {
					t.Error("identity is not the identity")
				}
			})
		}
	}
}

func TestModPWrapsDescriptor(t *testing.T) {
	sub, err := modp.NewSubGroup(context.Background(), modp.MODP1536, 96)
	require.NoError(t, err)
	g := ModP(sub)

	assert.Same(t, sub, g.Descriptor())
	assert.Equal(t, 0, g.Generator().(*ModPElement).Value().Value().Cmp(sub.G()))
	testExchange(t, 4, g)

	x := big.NewInt(12345)
	got := g.Element().BaseScale(x).(*ModPElement).Value()
	assert.True(t, got.Equal(sub.Element(x)))
}

func TestModPMismatch(t *testing.T) {
	a := RFC3526ModPGroup1536.Generator()
	b := RFC3526ModPGroup2048.Generator()
	assert.PanicsWithValue(t, modp.ErrGroupMismatch, func() { a.IsEqual(b) })
	assert.Panics(t, func() { a.IsEqual(P256().Generator()) })

	same := ModP(modp.NewGroup("copy", modp.MODP1536.P(), modp.MODP1536.Q(), modp.MODP1536.G()))
	assert.True(t, a.IsEqual(same.Generator()))
}

func TestRandomScalar(t *testing.T) {
	for _, g := range allGroups {
		s, err := RandomScalar(nil, g)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Sign())
		assert.Equal(t, -1, s.Cmp(g.N()))
	}
}

func TestRandomElementReadError(t *testing.T) {
	for _, g := range []Group{RFC3526ModPGroup1536, SecP256k1()} {
		assert.PanicsWithValue(t, "group: sampling random scalar: EOF", func() {
			randomElement(bytes.NewReader(nil), g)
		}, g.Name())
	}
}
