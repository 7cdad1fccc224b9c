// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/item"
)

// validateInput runs the checks shared by every selector, in priority order:
// budget first, then catalog entries.
//
// Complexity: O(n).
func validateInput(c item.Catalog, budget float64) error {
	if math.IsNaN(budget) || budget < 0 {
		return fmt.Errorf("got %v: %w", budget, ErrInvalidBudget)
	}

	return c.Validate()
}

// sumCost totals the cost of a selection.
func sumCost(items []*item.Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Cost()
	}

	return total
}
