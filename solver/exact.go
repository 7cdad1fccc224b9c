// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/knapsack/item"

// chain is an immutable singly linked list of chosen items. Sibling branches
// and memo entries share tails, so extending a selection is O(1) and never
// copies.
type chain struct {
	it   *item.Item
	next *chain
}

// partial is the answer to one subproblem: best value and the items behind it.
type partial struct {
	value float64
	taken *chain
}

// searcher walks the take/skip decision tree over a fixed catalog.
// The cursor i identifies the suffix c[i:]; spent is the forward sum of the
// costs taken so far, in catalog order. Feasibility is tested as
// spent+cost ≤ budget, the same float operations that produce Result.Cost,
// so a reported selection never exceeds the budget by rounding.
// memo is nil for the naive search.
type searcher struct {
	items  item.Catalog
	budget float64
	memo   *Memo
	calls  int
}

// best returns the optimum for the suffix starting at i after spending
// spent, consulting the memo first when one is attached.
func (s *searcher) best(i int, spent float64) partial {
	s.calls++
	if s.memo == nil {
		return s.explore(i, spent)
	}

	key := memoKey{remaining: len(s.items) - i, budget: s.budget, spent: spent}
	if p, ok := s.memo.lookup(key); ok {
		return p
	}
	p := s.explore(i, spent)
	s.memo.store(key, p)

	return p
}

// explore performs the case analysis on head = items[i]:
//  1. no items left or no budget left → empty selection;
//  2. head does not fit → skip branch only;
//  3. otherwise compare the with/without branches; with wins only when
//     strictly better.
func (s *searcher) explore(i int, spent float64) partial {
	if i == len(s.items) || spent >= s.budget {
		return partial{}
	}

	head := s.items[i]
	if spent+head.Cost() > s.budget {
		return s.best(i+1, spent)
	}

	with := s.best(i+1, spent+head.Cost())
	with.value += head.Value()
	without := s.best(i+1, spent)

	if with.value > without.value {
		return partial{value: with.value, taken: &chain{it: head, next: with.taken}}
	}

	return without
}

// result flattens the chain (catalog order) into a Result.
func (p partial) result(algo Algorithm, calls int) Result {
	items := make([]*item.Item, 0)
	for n := p.taken; n != nil; n = n.next {
		items = append(items, n.it)
	}

	return Result{
		Algorithm: algo,
		Value:     p.value,
		Cost:      sumCost(items),
		Items:     items,
		Calls:     calls,
	}
}

// Exact returns the optimal selection by exhaustive take/skip recursion.
//
// Algorithm (cursor i into c, spent so far s, avail = budget-s):
//  1. i == len(c) or nothing left to spend → (0, {}).
//  2. s+c[i].Cost() > budget → solve (i+1, s).
//  3. else with    = c[i].Value() + solve(i+1, s+c[i].Cost()),
//     without = solve(i+1, s);
//     pick with iff with > without (ties exclude c[i]).
//
// Errors: ErrInvalidBudget, item.ErrInvalidItem.
//
// Complexity: O(2ⁿ) time, O(n) stack. Result.Calls reports the number of
// recursive invocations.
func Exact(c item.Catalog, budget float64) (Result, error) {
	if err := validateInput(c, budget); err != nil {
		return Result{}, err
	}

	s := searcher{items: c, budget: budget}
	p := s.best(0, 0)

	return p.result(AlgoExact, s.calls), nil
}
