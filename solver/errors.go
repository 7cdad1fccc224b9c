// SPDX-License-Identifier: MIT
// Package solver: sentinel errors.
//
// Every message is prefixed with "solver: ". Selectors return these directly
// or wrapped with fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
// Item-level problems surface as item.ErrInvalidItem.

package solver

import "errors"

var (
	// ErrInvalidBudget is returned when the budget is negative or NaN.
	ErrInvalidBudget = errors.New("solver: budget must be ≥ 0")

	// ErrNilRankKey is returned by Greedy when no ranking key is supplied.
	ErrNilRankKey = errors.New("solver: rank key is nil")

	// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for
	// an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrMemoCatalogMismatch is returned when a Memo bound to one catalog is
	// handed a different one.
	ErrMemoCatalogMismatch = errors.New("solver: memo is bound to a different catalog")
)
