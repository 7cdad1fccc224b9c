// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before catalog construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic item name generator: idx -> string.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 is mapped to a fixed non-zero default, so it is reproducible too.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithValueFn overrides the per-item value generator. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn DrawFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithCostFn overrides the per-item cost generator. Panics on nil.
// A generator that yields a non-positive cost makes RandomCatalog fail
// with ErrConstructFailed.
// Complexity: O(1) time, O(1) space.
func WithCostFn(fn DrawFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithUniformValues draws integer values uniformly from [min, max].
// Panics if min < 0 or min > max.
func WithUniformValues(min, max int) BuilderOption {
	if min < 0 {
		panic("builder: WithUniformValues(min<0)")
	}
	return WithValueFn(UniformIntDraw(min, max))
}

// WithUniformCosts draws integer costs uniformly from [min, max].
// Panics if min < 1 or min > max.
func WithUniformCosts(min, max int) BuilderOption {
	if min < 1 {
		panic("builder: WithUniformCosts(min<1)")
	}
	return WithCostFn(UniformIntDraw(min, max))
}
