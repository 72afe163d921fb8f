package dh

import (
	stderrors "errors"
	"math/big"

	"github.com/AlvinHon/diffie-hellman-groups/group"
	"github.com/go-errors/errors"
)

// ErrUnsupportedGroup is returned by the byte encodings, which exist only for
// modp groups.
var ErrUnsupportedGroup = stderrors.New("dh: encoding needs a modp group")

// Bytes encodes a modp public value big-endian, left padded to the byte
// length of p.
func (p *PublicKey) Bytes() ([]byte, error) {
	return ElementBytes(p.y)
}

// ElementBytes encodes a modp element the same way as PublicKey.Bytes. It
// is used for shared secrets.
func ElementBytes(e group.Element) ([]byte, error) {
	m, ok := e.(*group.ModPElement)
	if !ok {
		return nil, errors.WrapPrefix(ErrUnsupportedGroup, "dh: "+e.String(), 0)
	}
	v := m.Value()
	width := (v.Group().BitLen() + 7) / 8
	return v.Value().FillBytes(make([]byte, width)), nil
}

// ParsePublicKey decodes b as a value of g and checks that it is a
// non-identity member of the order-q subgroup.
func ParsePublicKey(g *group.ModPGroup, b []byte) (*PublicKey, error) {
	desc := g.Descriptor()
	v := new(big.Int).SetBytes(b)
	if !desc.Contains(v) {
		return nil, errors.WrapPrefix(ErrInvalidPublicKey, "dh: value outside the subgroup of "+desc.Name(), 0)
	}
	return NewPublicKey(g, g.ElementOf(desc.ValueOf(v)))
}
