// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/logging"
)

const (
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
)

// newRootCmd builds a fresh command tree; tests build their own.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "knapsack",
		Short:         "Greedy vs exact 0/1 knapsack selection",
		Long:          `knapsack picks the subset of items with the highest total value whose total cost fits a budget, using a greedy heuristic or an exact (plain or memoized) search.`,
		Version:       "dev",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.BoolP(flagVerbose, "v", false, "verbose output (debug level)")
	pf.BoolP(flagQuiet, "q", false, "quiet output (errors only)")
	pf.String(config.KeyLogLevel, config.Default(config.KeyLogLevel).(string), "log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, config.Default(config.KeyLogFormat).(string), "log format: text or json")
	pf.String(config.KeyConfigFile, "", "optional config file (yaml, json or toml)")
	root.MarkFlagsMutuallyExclusive(flagVerbose, flagQuiet)

	root.AddCommand(newDemoCmd(), newSolveCmd(), newBenchCmd())

	return root
}

// setup resolves settings for cmd and builds its logger.
func setup(cmd *cobra.Command) (config.Settings, *slog.Logger, error) {
	s, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Settings{}, nil, err
	}

	level := s.LogLevel
	if v, _ := cmd.Flags().GetBool(flagVerbose); v {
		level = slog.LevelDebug
	}
	if q, _ := cmd.Flags().GetBool(flagQuiet); q {
		level = slog.LevelError
	}
	log := logging.New(logging.Config{
		Level:  level,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
	}).With("command", cmd.Name())

	return s, log, nil
}

func addBudgetFlag(fs *pflag.FlagSet) {
	fs.Float64P(config.KeyBudget, "b", config.Default(config.KeyBudget).(float64), "maximum total cost")
}

func addRankFlag(fs *pflag.FlagSet) {
	fs.String(config.KeyRank, config.Default(config.KeyRank).(string), "greedy rank key: value, inverse-cost, density")
}

func addFormatFlag(fs *pflag.FlagSet) {
	fs.StringP(config.KeyOutput, "o", config.Default(config.KeyOutput).(string), "output format: text, json, yaml")
}
