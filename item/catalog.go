// SPDX-License-Identifier: MIT

package item

import (
	"fmt"
	"strings"
)

// Catalog is an ordered sequence of items.
// Order is significant for exact search, which walks catalog suffixes by
// index; the optimal value itself does not depend on it.
type Catalog []*Item

// NewCatalog zips names, values and costs by position into a Catalog.
//
// Errors:
//   - ErrLengthMismatch if the three slices differ in length.
//   - ErrInvalidItem (wrapped with the index) if any triple is rejected by New.
//
// Complexity: O(n).
func NewCatalog(names []string, values, costs []float64) (Catalog, error) {
	if len(names) != len(values) || len(names) != len(costs) {
		return nil, fmt.Errorf("names=%d values=%d costs=%d: %w",
			len(names), len(values), len(costs), ErrLengthMismatch)
	}

	c := make(Catalog, len(names))
	for i := range names {
		it, err := New(names[i], values[i], costs[i])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		c[i] = it
	}

	return c, nil
}

// Validate reports ErrInvalidItem if any entry is nil.
// Items built by New are valid by construction, so this is O(n) pointer checks.
func (c Catalog) Validate() error {
	for i, it := range c {
		if it == nil {
			return fmt.Errorf("index %d: nil item: %w", i, ErrInvalidItem)
		}
	}

	return nil
}

// TotalValue sums Value over the catalog.
func (c Catalog) TotalValue() float64 {
	var sum float64
	for _, it := range c {
		sum += it.value
	}

	return sum
}

// TotalCost sums Cost over the catalog.
func (c Catalog) TotalCost() float64 {
	var sum float64
	for _, it := range c {
		sum += it.cost
	}

	return sum
}

// Names returns the item names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, it := range c {
		out[i] = it.name
	}

	return out
}

// String renders one item per line in catalog order.
func (c Catalog) String() string {
	var sb strings.Builder
	for i, it := range c {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(it.String())
	}

	return sb.String()
}
