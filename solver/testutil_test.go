package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/item"
)

// names projects a selection onto item names, preserving order.
func names(items []*item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name()
	}

	return out
}

// totalCost sums the cost of a selection independently of Result.Cost.
func totalCost(items []*item.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Cost()
	}

	return sum
}

// mustCatalog builds a catalog from inline columns or fails the test.
func mustCatalog(t testing.TB, names []string, values, costs []float64) item.Catalog {
	t.Helper()
	c, err := item.NewCatalog(names, values, costs)
	require.NoError(t, err)

	return c
}

// randomCase draws a small integral catalog and a budget from seed.
// Sizes stay ≤ 14 so the naive search remains cheap.
func randomCase(t testing.TB, seed int64) (item.Catalog, float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := rng.Intn(15)
	c, err := builder.RandomCatalog(n,
		builder.WithRand(rng),
		builder.WithUniformValues(1, 60),
		builder.WithUniformCosts(1, 40),
	)
	require.NoError(t, err)
	budget := float64(rng.Intn(200))

	return c, budget
}

// distinct reports whether a selection holds each catalog instance at most once.
func distinct(items []*item.Item) bool {
	seen := make(map[*item.Item]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			return false
		}
		seen[it] = struct{}{}
	}

	return true
}
