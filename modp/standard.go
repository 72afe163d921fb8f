package modp

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// The standard groups. Each uses generator 2 and the published q.
var (
	// MODP1536 is the 1536-bit group, IKE group 5.
	// p = 2^1536 - 2^1472 - 1 + 2^64 * { [2^1406 pi] + 741804 }
	MODP1536 = newStandard(5, "MODP1536", prime1536, order1536)
	// MODP2048 is IKE group 14.
	// p = 2^2048 - 2^1984 - 1 + 2^64 * { [2^1918 pi] + 124476 }
	MODP2048 = newStandard(14, "MODP2048", prime2048, order2048)
	// MODP3072 is IKE group 15.
	// p = 2^3072 - 2^3008 - 1 + 2^64 * { [2^2942 pi] + 1690314 }
	MODP3072 = newStandard(15, "MODP3072", prime3072, order3072)
	// MODP4096 is IKE group 16.
	// p = 2^4096 - 2^4032 - 1 + 2^64 * { [2^3966 pi] + 240904 }
	MODP4096 = newStandard(16, "MODP4096", prime4096, order4096)
	// MODP6144 is IKE group 17.
	// p = 2^6144 - 2^6080 - 1 + 2^64 * { [2^6014 pi] + 929484 }
	MODP6144 = newStandard(17, "MODP6144", prime6144, order6144)
	// MODP8192 is IKE group 18.
	// p = 2^8192 - 2^8128 - 1 + 2^64 * { [2^8062 pi] + 4743158 }
	MODP8192 = newStandard(18, "MODP8192", prime8192, order8192)
)

var standardByID = map[int]*Group{}

func newStandard(id int, name, p, q string) *Group {
	g := &Group{
		name: name,
		p:    mustParseHex(p),
		q:    mustParseHex(q),
		g:    big.NewInt(2),
	}
	standardByID[id] = g
	return g
}

// Standard returns the standard groups ordered by size.
func Standard() []*Group {
	groups := make([]*Group, 0, len(standardByID))
	for _, g := range standardByID {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].p.BitLen() < groups[j].p.BitLen()
	})
	return groups
}

// StandardID returns the IKE group number of a standard group, or 0.
func StandardID(g *Group) int {
	for id, s := range standardByID {
		if s.Equal(g) {
			return id
		}
	}
	return 0
}

// ByID looks up a standard group by its IKE group number (5, 14-18).
func ByID(id int) (*Group, error) {
	g, ok := standardByID[id]
	if !ok {
		return nil, fail(ErrUnknownGroup, "id %d", id)
	}
	return g, nil
}

// ByName looks up a standard group by name, ignoring case. The bare bit
// size ("2048") is accepted too.
func ByName(name string) (*Group, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "MODP")
	for _, g := range standardByID {
		if strings.TrimPrefix(g.name, "MODP") == n {
			return g, nil
		}
	}
	return nil, fail(ErrUnknownGroup, "name %q", name)
}

// Lookup accepts either an IKE group number or a name understood by ByName.
// Numbers that are bit sizes ("2048") resolve by name.
func Lookup(s string) (*Group, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if g, ok := standardByID[id]; ok {
			return g, nil
		}
	}
	return ByName(s)
}
