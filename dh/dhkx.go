package dh

import (
	"github.com/AlvinHon/diffie-hellman-groups/group"
	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/monnand/dhkx"
)

// ToDHKX returns the dhkx group with the same prime and generator as g.
func ToDHKX(g *modp.Group) *dhkx.DHGroup {
	return dhkx.CreateGroup(g.P(), g.G())
}

// DHKX converts a modp public key for use with a dhkx DHGroup.ComputeKey.
func (p *PublicKey) DHKX() (*dhkx.DHKey, error) {
	b, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return dhkx.NewPublicKey(b), nil
}

// FromDHKX takes a public key produced by a dhkx peer on the same prime and
// checks it against g.
func FromDHKX(g *group.ModPGroup, key *dhkx.DHKey) (*PublicKey, error) {
	return ParsePublicKey(g, key.Bytes())
}
