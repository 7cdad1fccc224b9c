// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// api.go — public catalog constructors.

package builder

import (
	"github.com/katalvlaran/knapsack/item"
)

// RandomCatalog builds n items named by the configured IDFn, with values and
// costs drawn from the configured DrawFns (value first, then cost, item by
// item). An RNG is mandatory; set it with WithSeed or WithRand.
//
// Errors:
//   - ErrBadSize if n < 0.
//   - ErrNeedRandSource if no RNG was configured.
//   - ErrConstructFailed (alongside item.ErrInvalidItem) if a draw produced
//     an invalid pair.
//
// Complexity: O(n) time, O(n) space.
func RandomCatalog(n int, opts ...BuilderOption) (item.Catalog, error) {
	if err := validateMin(MethodRandomCatalog, n, MinCatalogSize); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomCatalog, "%w", ErrNeedRandSource)
	}

	c := make(item.Catalog, n)
	var (
		i           int
		value, cost float64
		it          *item.Item
		err         error
	)
	for i = 0; i < n; i++ {
		value = cfg.valueFn(cfg.rng)
		cost = cfg.costFn(cfg.rng)
		if it, err = item.New(cfg.idFn(i), value, cost); err != nil {
			return nil, builderErrorf(MethodRandomCatalog, "item %d: %w: %w", i, ErrConstructFailed, err)
		}
		c[i] = it
	}

	return c, nil
}
