// SPDX-License-Identifier: MIT

package item

import (
	"fmt"
	"math"
)

// Item is an immutable (name, value, cost) record.
// The zero Item is not valid; use New.
type Item struct {
	name  string
	value float64
	cost  float64
}

// New validates and returns a new *Item.
//
// Contract:
//   - cost must be finite and > 0 (Density divides by it).
//   - value must be finite and ≥ 0.
//   - name is an opaque label; uniqueness is not required.
//
// Errors: ErrInvalidItem wrapped with the offending field.
func New(name string, value, cost float64) (*Item, error) {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost <= 0 {
		return nil, fmt.Errorf("%q: cost must be finite and > 0, got %v: %w", name, cost, ErrInvalidItem)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil, fmt.Errorf("%q: value must be finite and ≥ 0, got %v: %w", name, value, ErrInvalidItem)
	}

	return &Item{name: name, value: value, cost: cost}, nil
}

// Name returns the display label.
func (it *Item) Name() string { return it.name }

// Value returns the benefit gained when the item is selected.
func (it *Item) Value() float64 { return it.value }

// Cost returns the budget consumed when the item is selected.
func (it *Item) Cost() float64 { return it.cost }

// Density returns Value/Cost.
func (it *Item) Density() float64 { return it.value / it.cost }

// String renders "name: <value, cost>".
func (it *Item) String() string {
	return fmt.Sprintf("%s: <%v, %v>", it.name, it.value, it.cost)
}
