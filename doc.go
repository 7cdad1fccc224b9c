// SPDX-License-Identifier: MIT

// Package knapsack explores the 0/1 knapsack problem: given items with a
// non-negative value and a positive cost, choose the subset with the highest
// total value whose total cost fits a budget.
//
// Two strategies are provided and compared:
//
//   - Greedy selection with an injected ranking key (by value, by inverse
//     cost, by density, or any func(*item.Item) float64). Fast, O(n log n),
//     and not optimal in general.
//   - Exact search: a take/skip recursion over the catalog, plain (O(2ⁿ))
//     or memoized on the subproblem (items remaining, budget remaining).
//
// Packages:
//
//	item/    — Item, Catalog, ranking keys, JSON catalog parsing
//	solver/  — Greedy, Exact, ExactMemo, Memo, Solve dispatcher, Compare
//	builder/ — food menu fixture, seeded random catalogs, RNG streams
//	cmd/knapsack — CLI: demo, solve, bench
//
// Quick start:
//
//	menu := builder.FoodMenu()
//	res, err := solver.Solve(menu, 750)                      // exact, memoized
//	g, err := solver.Greedy(menu, 750, item.ByDensity)       // heuristic
//	cmp, err := solver.Compare(menu, 750, item.ByValue)      // both + gap
//
// Library packages never log and never panic on runtime input; failures are
// sentinel errors matched with errors.Is.
package knapsack
