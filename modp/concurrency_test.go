package modp

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with -race: groups and elements are shared read-only and every search
// draws from crypto/rand through its own config.
func TestConcurrentUse(t *testing.T) {
	const workers = 8
	parent := MODP1536
	shared := parent.Element(big.NewInt(7))

	var wg sync.WaitGroup
	groups := make([]*Group, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			groups[i], errs[i] = NewSubGroup(context.Background(), parent, 64)

			e := big.NewInt(int64(i + 1))
			got := shared.Pow(e).Mul(shared).Add(parent.Identity())
			want := parent.Element(big.NewInt(7 * (int64(i) + 2))).Add(parent.Identity())
			assert.True(t, got.Equal(want))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.NoError(t, groups[i].Validate(false))
		assert.True(t, groups[i].P().Cmp(parent.P()) == 0)
	}
	assert.True(t, shared.Equal(parent.Element(big.NewInt(7))))
	assert.Equal(t, 0, parent.G().Cmp(big.NewInt(2)))
}
