// SPDX-License-Identifier: MIT

package item

import (
	"fmt"
	"strings"
)

// RankKey maps an item to a number; greedy selection considers items in
// descending key order. It must be pure: the same item always yields the
// same key.
type RankKey func(*Item) float64

// ByValue ranks by raw value.
func ByValue(it *Item) float64 { return it.value }

// ByInverseCost ranks by 1/cost, so the cheapest items come first.
func ByInverseCost(it *Item) float64 { return 1 / it.cost }

// ByDensity ranks by value per unit of cost.
func ByDensity(it *Item) float64 { return it.Density() }

var rankKeys = map[string]RankKey{
	"value":        ByValue,
	"inverse-cost": ByInverseCost,
	"density":      ByDensity,
}

// RankKeyNames lists the names accepted by ParseRankKey, sorted.
func RankKeyNames() []string {
	return []string{"density", "inverse-cost", "value"}
}

// ParseRankKey maps "value", "inverse-cost" or "density" (any case) to the
// matching RankKey.
func ParseRankKey(name string) (RankKey, error) {
	if k, ok := rankKeys[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownRankKey)
}
