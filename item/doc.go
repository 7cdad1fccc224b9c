// SPDX-License-Identifier: MIT

// Package item defines the catalog side of the knapsack problem: immutable
// items carrying a value and a cost, ordered catalogs of items, and the
// ranking keys used by greedy selection.
//
// Items are created once and then shared by pointer. A selection returned by
// any solver holds the very instances of the catalog it was computed from,
// so identity comparison (==) is meaningful.
//
// Display format:
//
//	wine: <89, 123>
//
// i.e. "{name}: <{value}, {cost}>", numbers rendered with %v.
//
// Catalog input:
//
//   - NewCatalog zips parallel name/value/cost slices by position.
//   - ParseCatalogJSON accepts either an array of {"name","value","cost"}
//     objects or an object of parallel arrays {"names","values","costs"}.
//
// Ranking keys (RankKey) for greedy selection:
//
//   - ByValue       — raw value.
//   - ByInverseCost — 1/cost, cheapest first.
//   - ByDensity     — value/cost.
//
// Any func(*Item) float64 is a valid key.
package item
