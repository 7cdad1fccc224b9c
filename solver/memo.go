// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/knapsack/item"
)

// memoKey is the subproblem identity: how many items remain in the suffix
// and how much budget is left, stored as (budget, spent) so the remaining
// budget is exact in floating point rather than a rounded difference.
type memoKey struct {
	remaining int
	budget    float64
	spent     float64
}

// Memo caches subproblem answers for ExactMemo.
//
// The key ignores which items remain, only how many, so a Memo is sound
// only for one catalog. It binds to the first catalog it serves, keeping a
// snapshot of its item pointers, and rejects any catalog whose items differ
// (another slice, a resized one, or the same backing array after an element
// was replaced) with ErrMemoCatalogMismatch. Reusing it across budgets over
// the same catalog is sound; repeated budgets are answered from the cache.
//
// The zero value is ready to use. A Memo is not safe for concurrent use;
// give every goroutine its own.
type Memo struct {
	table map[memoKey]partial

	bound bool
	items []*item.Item // snapshot of the bound catalog

	hits   int
	misses int
}

// NewMemo returns an empty, unbound Memo.
func NewMemo() *Memo {
	return &Memo{table: make(map[memoKey]partial)}
}

// Len reports the number of cached subproblems.
func (m *Memo) Len() int { return len(m.table) }

// Hits reports lookups answered from the cache.
func (m *Memo) Hits() int { return m.hits }

// Misses reports subproblems that had to be computed and stored.
func (m *Memo) Misses() int { return m.misses }

// Reset drops every entry and unbinds the Memo so it may serve another catalog.
func (m *Memo) Reset() {
	clear(m.table)
	m.bound, m.items = false, nil
	m.hits, m.misses = 0, 0
}

// bind ties the Memo to c on first use and verifies identity afterwards by
// comparing item pointers, which costs O(n), negligible next to the search.
func (m *Memo) bind(c item.Catalog) error {
	if !m.bound {
		m.bound, m.items = true, slices.Clone([]*item.Item(c))

		return nil
	}
	if !slices.Equal(m.items, []*item.Item(c)) {
		return fmt.Errorf("bound to %d items, got %d: %w", len(m.items), len(c), ErrMemoCatalogMismatch)
	}

	return nil
}

func (m *Memo) lookup(k memoKey) (partial, bool) {
	p, ok := m.table[k]
	if ok {
		m.hits++
	}

	return p, ok
}

func (m *Memo) store(k memoKey, p partial) {
	if m.table == nil {
		m.table = make(map[memoKey]partial)
	}
	m.table[k] = p
	m.misses++
}

// ExactMemo returns the optimal selection using the same recursion and
// tie-break as Exact, caching every subproblem in memo.
//
// memo == nil allocates a private Memo for this call. A non-nil memo must
// be fresh, or previously used with this same catalog.
//
// Errors: ErrInvalidBudget, ErrMemoCatalogMismatch, item.ErrInvalidItem.
//
// Complexity: one computation per distinct (remaining, spent) pair, i.e.
// O(n·B) for integral costs and budget B; memory proportional to the
// number of cached pairs.
func ExactMemo(c item.Catalog, budget float64, memo *Memo) (Result, error) {
	if err := validateInput(c, budget); err != nil {
		return Result{}, err
	}
	if memo == nil {
		memo = NewMemo()
	}
	if err := memo.bind(c); err != nil {
		return Result{}, err
	}

	s := searcher{items: c, budget: budget, memo: memo}
	p := s.best(0, 0)

	return p.result(AlgoExactMemo, s.calls), nil
}
