// SPDX-License-Identifier: MIT

package solver

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/knapsack/item"
)

// Greedy fills the budget by walking the catalog in descending rank order.
//
// Algorithm:
//  1. Evaluate rank once per item.
//  2. Stable-sort item positions by key, highest first; equal keys keep
//     their catalog order so the output is reproducible.
//  3. Accept an item iff accumulated cost + its cost ≤ budget. A rejected
//     item is never reconsidered.
//
// The result is feasible but not necessarily optimal.
//
// Errors: ErrInvalidBudget, ErrNilRankKey, item.ErrInvalidItem.
//
// Complexity: O(n log n) time, O(n) extra space. The catalog is not mutated.
func Greedy(c item.Catalog, budget float64, rank item.RankKey) (Result, error) {
	if err := validateInput(c, budget); err != nil {
		return Result{}, err
	}
	if rank == nil {
		return Result{}, ErrNilRankKey
	}

	n := len(c)
	keys := make([]float64, n)
	order := make([]int, n)
	for i, it := range c {
		keys[i] = rank(it)
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(keys[b], keys[a]) // descending
	})

	res := Result{Algorithm: AlgoGreedy, Items: make([]*item.Item, 0, n)}
	for _, idx := range order {
		it := c[idx]
		if res.Cost+it.Cost() <= budget {
			res.Items = append(res.Items, it)
			res.Cost += it.Cost()
			res.Value += it.Value()
		}
	}

	return res, nil
}
