package modp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Miller-Rabin rounds for p and q. q is tested first since a composite
	// q is the common failure and the cheaper test.
	primeRoundsP = 64
	primeRoundsQ = 20
)

// IsSafePrime reports whether p and (p-1)/2 are both prime, returning
// q = (p-1)/2 when they are.
func IsSafePrime(p *big.Int) (*big.Int, bool) {
	if p.Sign() <= 0 || p.Bit(0) == 0 {
		return nil, false
	}
	q := new(big.Int).Rsh(p, 1)
	if !q.ProbablyPrime(primeRoundsQ) {
		return nil, false
	}
	if !p.ProbablyPrime(primeRoundsP) {
		return nil, false
	}
	return q, true
}

// NewSubGroup returns a group sharing p and q with parent and a new
// generator of at most bits bits that differs from parent's.
func NewSubGroup(ctx context.Context, parent *Group, bits int, opts ...SearchOption) (*Group, error) {
	opts = append([]SearchOption{WithExclude(parent.g)}, opts...)
	g, err := SearchGenerator(ctx, parent.p, parent.q, bits, opts...)
	if err != nil {
		return nil, err
	}
	return &Group{
		name: fmt.Sprintf("%s/%d", parent.name, bits),
		p:    new(big.Int).Set(parent.p),
		q:    new(big.Int).Set(parent.q),
		g:    g,
	}, nil
}

// NewPrimeGroup is NewSubGroup under the name used for the prime-order
// group derived from a standard group.
func NewPrimeGroup(ctx context.Context, parent *Group, bits int, opts ...SearchOption) (*Group, error) {
	return NewSubGroup(ctx, parent, bits, opts...)
}

// NewSafePrimeGroup builds a group from a caller supplied safe prime p
// with a generator of at most bits bits. It fails with ErrInvalidPrime
// when p is not a safe prime.
func NewSafePrimeGroup(ctx context.Context, p *big.Int, bits int, opts ...SearchOption) (*Group, error) {
	q, ok := IsSafePrime(p)
	if !ok {
		return nil, fail(ErrInvalidPrime, "p=%s", p.String())
	}
	g, err := SearchGenerator(ctx, p, q, bits, opts...)
	if err != nil {
		return nil, err
	}
	return &Group{
		name: fmt.Sprintf("safeprime%d/%d", p.BitLen(), bits),
		p:    new(big.Int).Set(p),
		q:    q,
		g:    g,
	}, nil
}

// GenerateSafePrimeGroup draws a fresh primeBits-bit safe prime and builds
// a group over it with a generator of at most genBits bits.
func GenerateSafePrimeGroup(ctx context.Context, primeBits, genBits int, opts ...SearchOption) (*Group, error) {
	if primeBits < 3 {
		return nil, fail(ErrInvalidBitLength, "prime bits=%d", primeBits)
	}
	// q will have primeBits-1 bits.
	if genBits < 2 || genBits > primeBits-1 {
		return nil, fail(ErrInvalidBitLength, "bits=%d, want [2, %d]", genBits, primeBits-1)
	}
	c := newSearchConfig(opts)
	p, err := generateSafePrime(ctx, c, primeBits)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("safe prime generated", "bits", primeBits)
	return NewSafePrimeGroup(ctx, p, genBits, opts...)
}

func generateSafePrime(ctx context.Context, c *searchConfig, bits int) (*big.Int, error) {
	for attempts := 1; ; attempts++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, err := rand.Prime(c.rand, bits-1)
		if err != nil {
			return nil, fail(err, "generating q")
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if p.BitLen() == bits && p.ProbablyPrime(primeRoundsP) {
			c.logger.Debug("safe prime candidate accepted", "attempts", attempts)
			return p, nil
		}
	}
}
