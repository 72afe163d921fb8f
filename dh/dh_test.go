package dh

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/AlvinHon/diffie-hellman-groups/group"
	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/monnand/dhkx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allGroups = []group.Group{
	group.RFC3526ModPGroup1536,
	group.RFC3526ModPGroup2048,
	group.SecP256k1(),
	group.P256(),
	group.P384(),
	group.Ristretto255(),
}

func TestExchange(t *testing.T) {
	const testTimes = 1 << 3
	for _, g := range allGroups {
		t.Run(g.Name(), func(t *testing.T) {
			for i := 0; i < testTimes; i++ {
				alice, err := GenerateKey(nil, g)
				require.NoError(t, err)
				bob, err := GenerateKey(nil, g)
				require.NoError(t, err)

				s1, err := alice.SharedSecret(bob.Public())
				require.NoError(t, err)
				s2, err := bob.SharedSecret(alice.Public())
				require.NoError(t, err)
				assert.True(t, s1.IsEqual(s2))
				assert.False(t, s1.IsIdentity())
			}
		})
	}
}

func TestFixedScalars(t *testing.T) {
	g := group.RFC3526ModPGroup2048
	alice, err := NewPrivateKey(g, big.NewInt(2))
	require.NoError(t, err)
	bob, err := NewPrivateKey(g, big.NewInt(3))
	require.NoError(t, err)

	s, err := alice.SharedSecret(bob.Public())
	require.NoError(t, err)
	b, err := ElementBytes(s)
	require.NoError(t, err)
	assert.Len(t, b, 256)
	assert.Equal(t, 0, new(big.Int).SetBytes(b).Cmp(big.NewInt(64)))

	_, err = NewPrivateKey(g, big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
	_, err = NewPrivateKey(g, big.NewInt(-3))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestRejectPeers(t *testing.T) {
	g := group.RFC3526ModPGroup1536
	k, err := GenerateKey(nil, g)
	require.NoError(t, err)

	_, err = NewPublicKey(g, g.Identity())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = k.SharedSecret(nil)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	other, err := GenerateKey(nil, group.RFC3526ModPGroup2048)
	require.NoError(t, err)
	_, err = k.SharedSecret(other.Public())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	curve, err := GenerateKey(nil, group.P256())
	require.NoError(t, err)
	_, err = k.SharedSecret(curve.Public())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	// p - 1 has order 2 and would give an identity secret for even x.
	desc := g.Descriptor()
	pm1 := g.ElementOf(desc.ValueOf(new(big.Int).Sub(desc.P(), big.NewInt(1))))
	_, err = NewPublicKey(g, pm1)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	even, err := NewPrivateKey(g, big.NewInt(2))
	require.NoError(t, err)
	_, err = even.SharedSecret(&PublicKey{group: g, y: pm1})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	// A scalar of q maps every subgroup member to the identity.
	degenerate, err := NewPrivateKey(g, desc.Q())
	require.NoError(t, err)
	_, err = degenerate.SharedSecret(k.Public())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestGenerateKeyReadError(t *testing.T) {
	_, err := GenerateKey(bytes.NewReader(nil), group.P256())
	assert.Error(t, err)
}

func TestEncoding(t *testing.T) {
	g := group.RFC3526ModPGroup2048
	k, err := GenerateKey(nil, g)
	require.NoError(t, err)

	b, err := k.Public().Bytes()
	require.NoError(t, err)
	assert.Len(t, b, 256)

	pub, err := ParsePublicKey(g, b)
	require.NoError(t, err)
	assert.True(t, pub.Equal(k.Public()))

	// p - 1 has order 2.
	pm1 := new(big.Int).Sub(g.P(), big.NewInt(1))
	_, err = ParsePublicKey(g, pm1.Bytes())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = ParsePublicKey(g, []byte{1})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = ParsePublicKey(g, g.P().Bytes())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	curve, err := GenerateKey(nil, group.P256())
	require.NoError(t, err)
	_, err = curve.Public().Bytes()
	assert.True(t, errors.Is(err, ErrUnsupportedGroup))
}

func TestSubGroupExchange(t *testing.T) {
	sub, err := modp.NewSubGroup(context.Background(), modp.MODP1536, 128)
	require.NoError(t, err)
	g := group.ModP(sub)

	alice, err := GenerateKey(nil, g)
	require.NoError(t, err)
	bob, err := GenerateKey(nil, g)
	require.NoError(t, err)

	s1, err := alice.SharedSecret(bob.Public())
	require.NoError(t, err)
	s2, err := bob.SharedSecret(alice.Public())
	require.NoError(t, err)
	assert.True(t, s1.IsEqual(s2))

	// Same primes, different generator.
	std, err := GenerateKey(nil, group.RFC3526ModPGroup1536)
	require.NoError(t, err)
	_, err = alice.SharedSecret(std.Public())
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestDHKXInterop(t *testing.T) {
	peer, err := dhkx.GetGroup(14)
	require.NoError(t, err)
	g := group.RFC3526ModPGroup2048

	theirs, err := peer.GeneratePrivateKey(nil)
	require.NoError(t, err)
	ours, err := GenerateKey(nil, g)
	require.NoError(t, err)

	theirPub, err := FromDHKX(g, theirs)
	require.NoError(t, err)
	s, err := ours.SharedSecret(theirPub)
	require.NoError(t, err)
	got, err := ElementBytes(s)
	require.NoError(t, err)

	ourPub, err := ours.Public().DHKX()
	require.NoError(t, err)
	want, err := peer.ComputeKey(ourPub, theirs)
	require.NoError(t, err)

	assert.Equal(t, want.Bytes(), got)
}

func TestToDHKX(t *testing.T) {
	peer := ToDHKX(modp.MODP1536)
	theirs, err := peer.GeneratePrivateKey(nil)
	require.NoError(t, err)

	g := group.RFC3526ModPGroup1536
	ours, err := GenerateKey(nil, g)
	require.NoError(t, err)

	theirPub, err := FromDHKX(g, theirs)
	require.NoError(t, err)
	s, err := ours.SharedSecret(theirPub)
	require.NoError(t, err)
	got, err := ElementBytes(s)
	require.NoError(t, err)

	ourPub, err := ours.Public().DHKX()
	require.NoError(t, err)
	want, err := peer.ComputeKey(ourPub, theirs)
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got)
}
