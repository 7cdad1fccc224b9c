package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

const propertySeeds = 60

// TestProperties checks, over seeded random catalogs, that every selector is
// feasible, exact search dominates greedy, naive and memoized searches agree,
// and repeated calls are idempotent.
func TestProperties(t *testing.T) {
	t.Parallel()

	ranks := map[string]item.RankKey{
		"value":   item.ByValue,
		"inverse": item.ByInverseCost,
		"density": item.ByDensity,
	}

	for seed := int64(1); seed <= propertySeeds; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			c, budget := randomCase(t, seed)

			naive, err := solver.Exact(c, budget)
			require.NoError(t, err)
			memo, err := solver.ExactMemo(c, budget, nil)
			require.NoError(t, err)

			// Feasibility and well-formed selections.
			for _, r := range []solver.Result{naive, memo} {
				assert.LessOrEqual(t, totalCost(r.Items), budget)
				assert.True(t, distinct(r.Items))
			}

			// Naive/memoized equivalence; with a fresh memo even the subset matches.
			assert.Equal(t, naive.Value, memo.Value)
			assert.Equal(t, naive.Items, memo.Items)
			assert.LessOrEqual(t, memo.Calls, naive.Calls)

			for name, rank := range ranks {
				g, err := solver.Greedy(c, budget, rank)
				require.NoError(t, err, name)
				assert.LessOrEqual(t, totalCost(g.Items), budget, name)
				assert.True(t, distinct(g.Items), name)
				assert.GreaterOrEqual(t, naive.Value, g.Value, name)

				again, err := solver.Greedy(c, budget, rank)
				require.NoError(t, err, name)
				assert.Equal(t, g, again, name)
			}

			// Idempotence.
			naive2, err := solver.Exact(c, budget)
			require.NoError(t, err)
			assert.Equal(t, naive, naive2)
			memo2, err := solver.ExactMemo(c, budget, nil)
			require.NoError(t, err)
			assert.Equal(t, memo, memo2)
		})
	}
}

// TestProperty_BudgetMonotonicity: raising the budget never lowers the optimum.
func TestProperty_BudgetMonotonicity(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		c, _ := randomCase(t, seed)
		memo := solver.NewMemo()

		prev := -1.0
		for budget := 0.0; budget <= 250; budget += 5 {
			res, err := solver.ExactMemo(c, budget, memo)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Value, prev, "seed %d budget %v", seed, budget)
			prev = res.Value
		}
	}
}

// TestProperty_OrderIndependentValue: permuting the catalog changes at most
// which subset is reported on ties, never the optimal value.
func TestProperty_OrderIndependentValue(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		c, budget := randomCase(t, seed)

		reversed := make(item.Catalog, len(c))
		for i, it := range c {
			reversed[len(c)-1-i] = it
		}

		a, err := solver.ExactMemo(c, budget, nil)
		require.NoError(t, err)
		b, err := solver.ExactMemo(reversed, budget, nil)
		require.NoError(t, err)
		assert.Equal(t, a.Value, b.Value, "seed %d", seed)
	}
}

// TestProperty_FractionalFeasibility draws costs in tenths, where forward
// sums pick up rounding error, and checks every reported cost against the
// budget exactly.
func TestProperty_FractionalFeasibility(t *testing.T) {
	tenths := func(rng *rand.Rand) float64 { return float64(1+rng.Intn(9)) / 10 }

	for seed := int64(1); seed <= 300; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c, err := builder.RandomCatalog(1+rng.Intn(8),
			builder.WithRand(rng),
			builder.WithUniformValues(1, 9),
			builder.WithCostFn(tenths),
		)
		require.NoError(t, err)
		budget := float64(rng.Intn(25)) / 10

		naive, err := solver.Exact(c, budget)
		require.NoError(t, err)
		memo, err := solver.ExactMemo(c, budget, nil)
		require.NoError(t, err)
		greedy, err := solver.Greedy(c, budget, item.ByDensity)
		require.NoError(t, err)

		for _, res := range []solver.Result{naive, memo, greedy} {
			assert.LessOrEqual(t, res.Cost, budget, "seed %d %v", seed, res.Algorithm)
			assert.Equal(t, totalCost(res.Items), res.Cost, "seed %d %v", seed, res.Algorithm)
		}
		assert.Equal(t, naive.Value, memo.Value, "seed %d", seed)
	}
}
