// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Select items from a catalog under a budget",
		Long: `solve reads a catalog and prints the selected items.

The catalog is JSON, either an array of {"name","value","cost"} objects or an
object of parallel arrays {"names":[],"values":[],"costs":[]}. Pass it inline,
as @path to read a file, or as - to read stdin. Without --catalog the food
menu is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, err := setup(cmd)
			if err != nil {
				return err
			}

			c, err := loadCatalog(cmd.InOrStdin(), s.Catalog)
			if err != nil {
				return err
			}
			log.Debug("catalog loaded", "items", len(c), "names", c.Names())

			res, err := solver.Solve(c, s.Budget,
				solver.WithAlgorithm(s.Algorithm),
				solver.WithRankKey(s.Rank),
			)
			if err != nil {
				return err
			}
			log.Info("solved",
				"algorithm", res.Algorithm.String(),
				"budget", s.Budget,
				"value", res.Value,
				"cost", res.Cost,
				"calls", res.Calls,
			)

			return renderResult(cmd.OutOrStdout(), s.Output, res, s.Budget)
		},
	}

	fs := cmd.Flags()
	addBudgetFlag(fs)
	addRankFlag(fs)
	addFormatFlag(fs)
	fs.StringP(config.KeyAlgorithm, "a", config.Default(config.KeyAlgorithm).(string), "algorithm: greedy, exact, exact-memo")
	fs.StringP(config.KeyCatalog, "c", "", "catalog JSON, @file or - for stdin")

	return cmd
}

// loadCatalog resolves the --catalog argument.
func loadCatalog(stdin io.Reader, src string) (item.Catalog, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case src == "":
		return builder.FoodMenu(), nil
	case src == "-":
		raw, err = io.ReadAll(stdin)
	case strings.HasPrefix(src, "@"):
		raw, err = os.ReadFile(src[1:])
	default:
		raw = []byte(src)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return item.ParseCatalogJSON(string(raw))
}
