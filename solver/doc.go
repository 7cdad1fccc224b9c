// SPDX-License-Identifier: MIT

// Package solver selects items from an item.Catalog under a cost budget
// (the 0/1 knapsack problem).
//
// It includes three selectors:
//
//   - Greedy — stable sort by a caller-supplied item.RankKey (descending),
//     then take every item that still fits.
//
//   - Complexity: O(n log n)
//
//   - Feasible, not optimal: it is the baseline the exact search is
//     measured against.
//
//   - Exact — recursive take/skip enumeration over a cursor into the
//     catalog.
//
//   - Complexity: O(2ⁿ)
//
//   - Always returns the true optimum.
//
//   - ExactMemo — the same recursion, with results cached on
//     (items remaining, remaining budget).
//
//   - Complexity: O(n·B) distinct states for integral costs and budget B.
//
//   - Memory:     one Memo entry per visited state.
//
// Tie-break: when taking an item and skipping it yield the same value, the
// item is skipped. Both exact variants therefore agree on value and, for a
// fresh Memo, on the chosen subset as well.
//
// Memo lifecycle: a Memo is an explicit object. It binds to the first
// catalog it serves and refuses any other (ErrMemoCatalogMismatch), because
// its key only records how many items remain, not which. Passing nil gives
// each call its own private Memo.
//
// Solve dispatches on Options (algorithm, rank key, memo); Compare runs the
// greedy baseline and the exact search side by side.
//
// No selector mutates the catalog, blocks, logs or panics.
package solver
