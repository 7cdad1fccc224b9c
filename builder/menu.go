// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/knapsack/item"

// Food menu columns: calories are the cost, the value is a liking score.
var (
	menuNames  = []string{"wine", "beer", "pizza", "burger", "fries", "cola", "apple", "donut", "cake"}
	menuValues = []float64{89, 90, 95, 100, 90, 79, 50, 10, 40}
	menuCosts  = []float64{123, 154, 258, 354, 365, 150, 95, 195, 120}
)

// FoodMenu returns the nine-item menu used across examples and tests.
// Each call builds a fresh catalog with its own backing array.
func FoodMenu() item.Catalog {
	c, err := item.NewCatalog(menuNames, menuValues, menuCosts)
	if err != nil {
		// The columns above are static and valid.
		panic(err)
	}

	return c
}
