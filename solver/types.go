// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/item"
)

// Algorithm selects the strategy used by Solve.
type Algorithm int

const (
	// AlgoExactMemo runs the memoized exact search (default).
	AlgoExactMemo Algorithm = iota
	// AlgoExact runs the plain exponential exact search.
	AlgoExact
	// AlgoGreedy runs the greedy heuristic with the configured rank key.
	AlgoGreedy
)

var algoNames = map[Algorithm]string{
	AlgoExactMemo: "exact-memo",
	AlgoExact:     "exact",
	AlgoGreedy:    "greedy",
}

// String returns the CLI name of the algorithm.
func (a Algorithm) String() string {
	if s, ok := algoNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name ("greedy", "exact", "exact-memo") to an Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range algoNames {
		if name == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Result is the outcome of a selector.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Value is the summed value of Items.
	Value float64

	// Cost is the summed cost of Items; always ≤ the budget.
	Cost float64

	// Items are catalog instances (no copies, no duplicates).
	// Greedy lists them in acceptance order, exact searches in catalog order.
	Items []*item.Item

	// Calls counts recursive invocations of the exact search, cache hits
	// included. Zero for Greedy.
	Calls int
}

// Comparison pairs the greedy baseline with the exact optimum.
type Comparison struct {
	Greedy Result
	Exact  Result

	// Gap is Exact.Value - Greedy.Value; never negative.
	Gap float64
}
