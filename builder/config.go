// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn                     ("0","1","2",...)
//   • rng     = nil                             (RandomCatalog requires a seed)
//   • valueFn = UniformIntDraw(DefaultMinDraw, DefaultMaxDraw)
//   • costFn  = UniformIntDraw(DefaultMinDraw, DefaultMaxDraw)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Item name strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic draws; nil means “no randomness”.
	rng *rand.Rand
	// Value and cost generators, called once per item in that order.
	valueFn DrawFn
	costFn  DrawFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		valueFn: UniformIntDraw(DefaultMinDraw, DefaultMaxDraw),
		costFn:  UniformIntDraw(DefaultMinDraw, DefaultMaxDraw),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
