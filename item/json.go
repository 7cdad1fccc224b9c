// SPDX-License-Identifier: MIT

package item

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseCatalogJSON builds a Catalog from JSON text.
//
// Two shapes are accepted:
//
//	[{"name":"wine","value":89,"cost":123}, ...]
//	{"names":["wine",...],"values":[89,...],"costs":[123,...]}
//
// The second shape goes through NewCatalog and so reports ErrLengthMismatch
// for ragged arrays. Anything else, including non-numeric values or costs,
// is ErrMalformedCatalog. Item validation errors surface as ErrInvalidItem.
func ParseCatalogJSON(data string) (Catalog, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("invalid json: %w", ErrMalformedCatalog)
	}
	root := gjson.Parse(data)

	switch {
	case root.IsArray():
		return parseObjects(root)
	case root.IsObject():
		return parseColumns(root)
	default:
		return nil, fmt.Errorf("top-level %s: %w", root.Type, ErrMalformedCatalog)
	}
}

// parseObjects handles the array-of-objects shape.
func parseObjects(root gjson.Result) (Catalog, error) {
	entries := root.Array()
	c := make(Catalog, 0, len(entries))
	for i, e := range entries {
		if !e.IsObject() {
			return nil, fmt.Errorf("entry %d is %s: %w", i, e.Type, ErrMalformedCatalog)
		}
		value, cost := e.Get("value"), e.Get("cost")
		if value.Type != gjson.Number || cost.Type != gjson.Number {
			return nil, fmt.Errorf("entry %d: value and cost must be numbers: %w", i, ErrMalformedCatalog)
		}
		it, err := New(e.Get("name").String(), value.Float(), cost.Float())
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		c = append(c, it)
	}

	return c, nil
}

// parseColumns handles the parallel-arrays shape.
func parseColumns(root gjson.Result) (Catalog, error) {
	keys := []string{"names", "values", "costs"}
	cols := gjson.GetMany(root.Raw, keys...)
	for i, key := range keys {
		if !cols[i].IsArray() {
			return nil, fmt.Errorf("%q must be an array: %w", key, ErrMalformedCatalog)
		}
	}

	var names []string
	cols[0].ForEach(func(_, v gjson.Result) bool {
		names = append(names, v.String())
		return true
	})
	values, err := numbers("values", cols[1])
	if err != nil {
		return nil, err
	}
	costs, err := numbers("costs", cols[2])
	if err != nil {
		return nil, err
	}

	return NewCatalog(names, values, costs)
}

// numbers collects a JSON array of numbers.
func numbers(key string, arr gjson.Result) ([]float64, error) {
	elems := arr.Array()
	out := make([]float64, len(elems))
	for i, v := range elems {
		if v.Type != gjson.Number {
			return nil, fmt.Errorf("%s[%d] is not a number: %w", key, i, ErrMalformedCatalog)
		}
		out[i] = v.Float()
	}

	return out, nil
}
