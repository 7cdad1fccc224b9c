// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every strategy on the nine-item food menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, err := setup(cmd)
			if err != nil {
				return err
			}
			log.Debug("running demo", "budget", s.Budget)

			return runDemo(cmd.OutOrStdout(), builder.FoodMenu(), s.Budget)
		},
	}
	addBudgetFlag(cmd.Flags())

	return cmd
}

var demoRanks = []struct {
	label string
	key   item.RankKey
}{
	{"value", item.ByValue},
	{"cost", item.ByInverseCost},
	{"density", item.ByDensity},
}

// runDemo prints greedy runs for the three rank keys followed by both exact
// searches.
func runDemo(w io.Writer, menu item.Catalog, budget float64) error {
	for _, r := range demoRanks {
		res, err := solver.Greedy(menu, budget, r.key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Use greedy by %s to allocate %v calories.\n", r.label, budget)
		writeTaken(w, res)
	}

	res, err := solver.Exact(menu, budget)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Use search tree to allocate %v calories.\n", budget)
	writeTaken(w, res)
	fmt.Fprintf(w, "Number of calls = %d\n", res.Calls)

	memo := solver.NewMemo()
	if res, err = solver.ExactMemo(menu, budget, memo); err != nil {
		return err
	}
	fmt.Fprintf(w, "Use memoized search tree to allocate %v calories.\n", budget)
	writeTaken(w, res)
	fmt.Fprintf(w, "Number of calls = %d (memo entries %d, hits %d)\n", res.Calls, memo.Len(), memo.Hits())

	return nil
}
