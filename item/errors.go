// SPDX-License-Identifier: MIT
// Package item: sentinel errors.
// Callers branch with errors.Is; context is attached with %w at the call site.

package item

import "errors"

var (
	// ErrLengthMismatch is returned by NewCatalog when the parallel input
	// slices do not have the same length.
	ErrLengthMismatch = errors.New("item: parallel sequences differ in length")

	// ErrInvalidItem indicates a non-positive or non-finite cost, a negative
	// or non-finite value, or a nil entry inside a Catalog.
	ErrInvalidItem = errors.New("item: invalid item")

	// ErrMalformedCatalog indicates JSON input that is neither an array of
	// item objects nor an object of parallel arrays.
	ErrMalformedCatalog = errors.New("item: malformed catalog json")

	// ErrUnknownRankKey is returned by ParseRankKey for an unrecognized name.
	ErrUnknownRankKey = errors.New("item: unknown rank key")
)
