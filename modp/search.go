package modp

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"math/big"
)

// DefaultMaxTrials caps the rejection sampling loop. For a safe prime
// each draw succeeds with probability close to 1/2, so reaching the cap
// means the random source is broken.
const DefaultMaxTrials = 1 << 10

type searchConfig struct {
	rand      io.Reader
	maxTrials int
	exclude   *big.Int
	logger    *slog.Logger
}

// SearchOption configures SearchGenerator and the factories.
type SearchOption func(*searchConfig)

// WithRand sets the random source. It must be safe for the caller's
// concurrency; crypto/rand.Reader is used when unset.
func WithRand(r io.Reader) SearchOption {
	return func(c *searchConfig) {
		c.rand = r
	}
}

// WithMaxTrials sets the trial cap. Values below 1 restore the default.
func WithMaxTrials(n int) SearchOption {
	return func(c *searchConfig) {
		c.maxTrials = n
	}
}

// WithExclude rejects candidates equal to v, typically an existing
// generator that the new one must differ from.
func WithExclude(v *big.Int) SearchOption {
	return func(c *searchConfig) {
		if v != nil {
			c.exclude = new(big.Int).Set(v)
		}
	}
}

func WithLogger(l *slog.Logger) SearchOption {
	return func(c *searchConfig) {
		c.logger = l
	}
}

func newSearchConfig(opts []SearchOption) *searchConfig {
	c := &searchConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rand.Reader
	}
	if c.maxTrials < 1 {
		c.maxTrials = DefaultMaxTrials
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// SearchGenerator finds g with g^q = 1 mod p by drawing candidates
// uniformly from [0, 2^bits). bits must lie in [2, bitlen(q)]. Candidates
// 0 and 1 are never accepted, so the result satisfies 1 < g < 2^bits.
//
// ctx is checked between draws.
func SearchGenerator(ctx context.Context, p, q *big.Int, bits int, opts ...SearchOption) (*big.Int, error) {
	if bits < 2 || bits > q.BitLen() {
		return nil, fail(ErrInvalidBitLength, "bits=%d, want [2, %d]", bits, q.BitLen())
	}
	c := newSearchConfig(opts)

	buf := make([]byte, (bits+7)/8)
	for trial := 1; trial <= c.maxTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := randomBits(c.rand, buf, bits)
		if err != nil {
			return nil, fail(err, "reading candidate")
		}
		if a.Cmp(one) <= 0 {
			continue
		}
		if c.exclude != nil && a.Cmp(c.exclude) == 0 {
			continue
		}
		if new(big.Int).Exp(a, q, p).Cmp(one) == 0 {
			c.logger.Debug("generator found", "bits", bits, "trials", trial)
			return a, nil
		}
	}

	c.logger.Warn("generator search exhausted", "bits", bits, "trials", c.maxTrials)
	return nil, fail(ErrSearchExhausted, "%d trials", c.maxTrials)
}

// randomBits reads a uniform integer in [0, 2^bits) using buf as scratch.
func randomBits(r io.Reader, buf []byte, bits int) (*big.Int, error) {
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	if extra := len(buf)*8 - bits; extra > 0 {
		buf[0] &= byte(0xff) >> uint(extra)
	}
	return new(big.Int).SetBytes(buf), nil
}
