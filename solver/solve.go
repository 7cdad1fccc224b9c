// SPDX-License-Identifier: MIT
// Package solver - unified dispatcher.
//
// Solve routes a catalog and budget to the configured selector; Compare runs
// the greedy baseline and the exact optimum on the same input. Validation is
// performed once by the selector that ends up running.

package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsack/item"
)

// Solve runs the algorithm chosen by opts (default AlgoExactMemo).
//
// Errors: those of the selected algorithm, or ErrUnsupportedAlgorithm.
func Solve(c item.Catalog, budget float64, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	switch cfg.algo {
	case AlgoGreedy:
		return Greedy(c, budget, cfg.rank)
	case AlgoExact:
		return Exact(c, budget)
	case AlgoExactMemo:
		return ExactMemo(c, budget, cfg.memo)
	default:
		return Result{}, fmt.Errorf("%v: %w", cfg.algo, ErrUnsupportedAlgorithm)
	}
}

// Compare runs Greedy with rank and ExactMemo (private memo) on the same
// catalog and budget. The exact value never falls below the greedy one.
func Compare(c item.Catalog, budget float64, rank item.RankKey) (Comparison, error) {
	g, err := Greedy(c, budget, rank)
	if err != nil {
		return Comparison{}, err
	}
	e, err := ExactMemo(c, budget, nil)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{Greedy: g, Exact: e, Gap: e.Value - g.Value}, nil
}
