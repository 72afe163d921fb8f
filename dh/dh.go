// Package dh implements Diffie-Hellman key agreement over any group.Group.
//
// Both parties pick a secret scalar x in [1, N), publish g^x, and raise the
// peer's public value to their own scalar. The shared values agree because
// (g^a)^b = g^(ab) = (g^b)^a. No key derivation is applied to the result.
package dh

import (
	stderrors "errors"
	"io"
	"math/big"

	"github.com/AlvinHon/diffie-hellman-groups/group"
	"github.com/go-errors/errors"
)

var (
	// ErrInvalidPublicKey reports a peer value that is the identity, lies
	// outside the prime-order subgroup or belongs to another group.
	ErrInvalidPublicKey = stderrors.New("dh: invalid public key")
	// ErrInvalidPrivateKey reports a non-positive secret scalar.
	ErrInvalidPrivateKey = stderrors.New("dh: invalid private key")
)

type PrivateKey struct {
	group group.Group
	x     *big.Int
	pub   *PublicKey
}

type PublicKey struct {
	group group.Group
	y     group.Element
}

// GenerateKey draws a private key for g from r. A nil r uses crypto/rand.
func GenerateKey(r io.Reader, g group.Group) (*PrivateKey, error) {
	x, err := group.RandomScalar(r, g)
	if err != nil {
		return nil, errors.WrapPrefix(err, "dh: generating key", 0)
	}
	return newPrivateKey(g, x), nil
}

// NewPrivateKey builds a private key from a fixed scalar.
func NewPrivateKey(g group.Group, x *big.Int) (*PrivateKey, error) {
	if x == nil || x.Sign() <= 0 {
		return nil, errors.WrapPrefix(ErrInvalidPrivateKey, "dh: scalar must be positive", 0)
	}
	return newPrivateKey(g, new(big.Int).Set(x)), nil
}

func newPrivateKey(g group.Group, x *big.Int) *PrivateKey {
	k := &PrivateKey{group: g, x: x}
	k.pub = &PublicKey{group: g, y: g.Element().BaseScale(x)}
	return k
}

func (k *PrivateKey) Group() group.Group {
	return k.group
}

// Scalar returns a copy of the secret scalar.
func (k *PrivateKey) Scalar() *big.Int {
	return new(big.Int).Set(k.x)
}

// Public returns g^x.
func (k *PrivateKey) Public() *PublicKey {
	return k.pub
}

// SharedSecret returns peer^x. The peer must be a non-identity element of
// the same group, and the result must not be the identity.
func (k *PrivateKey) SharedSecret(peer *PublicKey) (group.Element, error) {
	if peer == nil || peer.y == nil {
		return nil, errors.WrapPrefix(ErrInvalidPublicKey, "dh: missing peer value", 0)
	}
	if !sameGroup(k.group, peer.group) {
		return nil, errors.WrapPrefix(ErrInvalidPublicKey,
			"dh: peer uses "+peer.group.Name()+", want "+k.group.Name(), 0)
	}
	if err := checkPeer(peer.y); err != nil {
		return nil, err
	}
	s := k.group.Element().Scale(peer.y, k.x)
	if s.IsIdentity() {
		return nil, errors.WrapPrefix(ErrInvalidPublicKey, "dh: shared value is the identity", 0)
	}
	return s, nil
}

// NewPublicKey wraps a peer element. The identity is rejected, as are modp
// values outside the order-q subgroup.
func NewPublicKey(g group.Group, y group.Element) (*PublicKey, error) {
	if y == nil {
		return nil, errors.WrapPrefix(ErrInvalidPublicKey, "dh: missing peer value", 0)
	}
	if err := checkPeer(y); err != nil {
		return nil, err
	}
	return &PublicKey{group: g, y: g.Element().Set(y)}, nil
}

func checkPeer(y group.Element) error {
	if y.IsIdentity() {
		return errors.WrapPrefix(ErrInvalidPublicKey, "dh: peer value is the identity", 0)
	}
	if m, ok := y.(*group.ModPElement); ok {
		v := m.Value()
		if !v.Group().Contains(v.Value()) {
			return errors.WrapPrefix(ErrInvalidPublicKey, "dh: peer value outside the subgroup of "+v.Group().Name(), 0)
		}
	}
	return nil
}

func (p *PublicKey) Group() group.Group {
	return p.group
}

// Element returns a copy of the public value.
func (p *PublicKey) Element() group.Element {
	return p.group.Element().Set(p.y)
}

func (p *PublicKey) Equal(q *PublicKey) bool {
	return sameGroup(p.group, q.group) && p.y.IsEqual(q.y)
}

func (p *PublicKey) String() string {
	return p.y.String()
}

func sameGroup(a, b group.Group) bool {
	ma, aok := a.(*group.ModPGroup)
	mb, bok := b.(*group.ModPGroup)
	if aok || bok {
		return aok && bok && ma.Descriptor().Equal(mb.Descriptor())
	}
	return a.Name() == b.Name()
}
