package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

// TestExactMemo_FoodMenu matches the naive search bit for bit and accounts
// for every call as either a hit or a miss.
func TestExactMemo_FoodMenu(t *testing.T) {
	menu := builder.FoodMenu()
	memo := solver.NewMemo()

	res, err := solver.ExactMemo(menu, 750, memo)
	require.NoError(t, err)
	naive, err := solver.Exact(menu, 750)
	require.NoError(t, err)

	assert.Equal(t, naive.Value, res.Value)
	assert.Equal(t, naive.Items, res.Items)
	assert.Equal(t, 364.0, res.Value)
	assert.Equal(t, 416, res.Calls)
	assert.Equal(t, solver.AlgoExactMemo, res.Algorithm)

	assert.Equal(t, res.Calls, memo.Hits()+memo.Misses())
	assert.Equal(t, memo.Misses(), memo.Len())
	assert.Positive(t, memo.Hits())
}

// TestExactMemo_NilMemo allocates a private cache per call.
func TestExactMemo_NilMemo(t *testing.T) {
	a := builder.FoodMenu()
	b := builder.FoodMenu()[:4]

	ra, err := solver.ExactMemo(a, 750, nil)
	require.NoError(t, err)
	rb, err := solver.ExactMemo(b, 750, nil)
	require.NoError(t, err)

	assert.Equal(t, 364.0, ra.Value)
	assert.Equal(t, []string{"wine", "pizza", "burger"}, names(rb.Items))
	assert.Equal(t, 284.0, rb.Value)
}

// TestExactMemo_ZeroValueMemo shows the zero Memo is usable.
func TestExactMemo_ZeroValueMemo(t *testing.T) {
	var memo solver.Memo

	res, err := solver.ExactMemo(builder.FoodMenu(), 1000, &memo)
	require.NoError(t, err)
	assert.Equal(t, 448.0, res.Value)
	assert.Positive(t, memo.Len())
}

// TestMemo_RejectsOtherCatalog guards the key's blind spot: it only counts
// remaining items, so a memo must never answer for a different catalog.
func TestMemo_RejectsOtherCatalog(t *testing.T) {
	menu := builder.FoodMenu()
	memo := solver.NewMemo()

	_, err := solver.ExactMemo(menu, 500, memo)
	require.NoError(t, err)

	other := builder.FoodMenu()
	_, err = solver.ExactMemo(other, 500, memo)
	assert.ErrorIs(t, err, solver.ErrMemoCatalogMismatch)

	_, err = solver.ExactMemo(menu[1:], 500, memo)
	assert.ErrorIs(t, err, solver.ErrMemoCatalogMismatch)

	_, err = solver.ExactMemo(menu[:5], 500, memo)
	assert.ErrorIs(t, err, solver.ErrMemoCatalogMismatch)

	memo.Reset()
	assert.Zero(t, memo.Len())
	assert.Zero(t, memo.Hits())

	res, err := solver.ExactMemo(other, 500, memo)
	require.NoError(t, err)
	fresh, err := solver.ExactMemo(other, 500, nil)
	require.NoError(t, err)
	assert.Equal(t, fresh.Value, res.Value)
}

// TestMemo_RejectsMutatedCatalog covers catalogs that share the bound
// backing array and length but hold different items.
func TestMemo_RejectsMutatedCatalog(t *testing.T) {
	base := mustCatalog(t,
		[]string{"a", "b", "c", "d"},
		[]float64{1, 1, 1, 1},
		[]float64{1, 1, 1, 1},
	)
	memo := solver.NewMemo()
	res, err := solver.ExactMemo(base, 4, memo)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Value)

	gold, err := item.New("gold", 100, 1)
	require.NoError(t, err)
	swapped := append(base[:3], gold)
	require.Same(t, &base[0], &swapped[0], "same backing array")

	_, err = solver.ExactMemo(swapped, 4, memo)
	assert.ErrorIs(t, err, solver.ErrMemoCatalogMismatch)

	fresh, err := solver.ExactMemo(swapped, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 103.0, fresh.Value)
}

// TestMemo_ReuseAcrossBudgets sweeps budgets over one catalog with a shared
// memo; every answer must match a fresh search, and later calls get cheaper.
func TestMemo_ReuseAcrossBudgets(t *testing.T) {
	menu := builder.FoodMenu()
	shared := solver.NewMemo()

	var prev float64
	for budget := 0.0; budget <= 1200; budget += 50 {
		got, err := solver.ExactMemo(menu, budget, shared)
		require.NoError(t, err)
		want, err := solver.ExactMemo(menu, budget, nil)
		require.NoError(t, err)

		assert.Equal(t, want.Value, got.Value, "budget %v", budget)
		assert.Equal(t, want.Items, got.Items, "budget %v", budget)
		assert.LessOrEqual(t, got.Calls, want.Calls, "budget %v", budget)
		assert.GreaterOrEqual(t, got.Value, prev, "budget %v", budget)
		prev = got.Value
	}

	again, err := solver.ExactMemo(menu, 750, shared)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Calls)
}

// TestMemo_InvalidBudgetLeavesMemoUnbound validates before binding.
func TestMemo_InvalidBudgetLeavesMemoUnbound(t *testing.T) {
	memo := solver.NewMemo()

	_, err := solver.ExactMemo(builder.FoodMenu(), -1, memo)
	require.ErrorIs(t, err, solver.ErrInvalidBudget)

	_, err = solver.ExactMemo(builder.FoodMenu(), 1, memo)
	assert.NoError(t, err)
}

// TestExactMemo_Tractable runs a catalog far too large for the naive search.
func TestExactMemo_Tractable(t *testing.T) {
	c, err := builder.RandomCatalog(60,
		builder.WithSeed(7),
		builder.WithUniformValues(1, 100),
		builder.WithUniformCosts(1, 100),
	)
	require.NoError(t, err)

	memo := solver.NewMemo()
	res, err := solver.ExactMemo(c, 500, memo)
	require.NoError(t, err)

	g, err := solver.Greedy(c, 500, item.ByDensity)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Value, g.Value)
	assert.LessOrEqual(t, res.Cost, 500.0)
	assert.LessOrEqual(t, memo.Len(), 61*501)
}
