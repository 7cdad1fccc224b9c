// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/solver"
)

type itemView struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Cost  float64 `json:"cost" yaml:"cost"`
}

type resultView struct {
	Algorithm string     `json:"algorithm" yaml:"algorithm"`
	Budget    float64    `json:"budget" yaml:"budget"`
	Value     float64    `json:"value" yaml:"value"`
	Cost      float64    `json:"cost" yaml:"cost"`
	Calls     int        `json:"calls,omitempty" yaml:"calls,omitempty"`
	Items     []itemView `json:"items" yaml:"items"`
}

func newResultView(res solver.Result, budget float64) resultView {
	v := resultView{
		Algorithm: res.Algorithm.String(),
		Budget:    budget,
		Value:     res.Value,
		Cost:      res.Cost,
		Calls:     res.Calls,
		Items:     make([]itemView, len(res.Items)),
	}
	for i, it := range res.Items {
		v.Items[i] = itemView{Name: it.Name(), Value: it.Value(), Cost: it.Cost()}
	}

	return v
}

// writeTaken prints the value line and one tab-indented item per line.
func writeTaken(w io.Writer, res solver.Result) {
	fmt.Fprintf(w, "Total value of items taken = %v\n", res.Value)
	for _, it := range res.Items {
		fmt.Fprintf(w, "\t%s\n", it)
	}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%q: %w", format, config.ErrInvalidSetting)
}

// renderResult writes one solver result in the requested format.
func renderResult(w io.Writer, format string, res solver.Result, budget float64) error {
	if format != config.OutputText {
		return encode(w, format, newResultView(res, budget))
	}

	fmt.Fprintf(w, "Use %s to allocate %v.\n", res.Algorithm, budget)
	writeTaken(w, res)
	fmt.Fprintf(w, "Total cost = %v\n", res.Cost)
	if res.Calls > 0 {
		fmt.Fprintf(w, "Number of calls = %d\n", res.Calls)
	}

	return nil
}
