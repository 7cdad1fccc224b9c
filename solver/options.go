// SPDX-License-Identifier: MIT
// Package solver: functional options for Solve.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input (nil rank
//     key, nil memo). Selectors themselves never panic.
//   • Options resolve into an unexported config with deterministic defaults;
//     later options override earlier ones.

package solver

import "github.com/katalvlaran/knapsack/item"

// Option customizes Solve.
type Option func(*config)

// config is the resolved option set.
type config struct {
	algo Algorithm
	rank item.RankKey
	memo *Memo
}

// defaultRank is the greedy key used when none is configured.
var defaultRank item.RankKey = item.ByDensity

// newConfig applies opts over the defaults: memoized exact search, density
// ranking, private memo per call.
func newConfig(opts ...Option) config {
	cfg := config{
		algo: AlgoExactMemo,
		rank: defaultRank,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithAlgorithm selects the strategy. Unknown values are reported by Solve
// as ErrUnsupportedAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		c.algo = a
	}
}

// WithRankKey sets the greedy ranking key. Panics on nil.
func WithRankKey(rank item.RankKey) Option {
	if rank == nil {
		panic("solver: WithRankKey(nil)")
	}
	return func(c *config) {
		c.rank = rank
	}
}

// WithMemo supplies the cache for AlgoExactMemo, e.g. to reuse it across
// budgets over one catalog. Panics on nil; omit the option for a private memo.
func WithMemo(m *Memo) Option {
	if m == nil {
		panic("solver: WithMemo(nil)")
	}
	return func(c *config) {
		c.memo = m
	}
}
