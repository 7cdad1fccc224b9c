// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

// errDisagreement means the plain and memoized searches found different optima.
var errDisagreement = errors.New("bench: naive and memoized search disagree")

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare strategies on seeded random catalogs",
		Long: `bench draws --trials random catalogs of --items items (values and costs
uniform integers in [1,100]) and runs greedy and memoized exact search on each,
in parallel on up to --workers goroutines. Catalogs with at most --naive-limit
items are also solved by the plain exact search to cross-check the optimum.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, err := setup(cmd)
			if err != nil {
				return err
			}

			sum, err := runBench(cmd.Context(), log, s)
			if err != nil {
				return err
			}
			if s.Output != config.OutputText {
				return encode(cmd.OutOrStdout(), s.Output, sum)
			}
			writeBench(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	fs := cmd.Flags()
	addBudgetFlag(fs)
	addRankFlag(fs)
	addFormatFlag(fs)
	fs.IntP(config.KeyItems, "n", config.Default(config.KeyItems).(int), "items per catalog")
	fs.IntP(config.KeyTrials, "t", config.Default(config.KeyTrials).(int), "number of catalogs")
	fs.Int64(config.KeySeed, config.Default(config.KeySeed).(int64), "base RNG seed")
	fs.Int(config.KeyNaiveLimit, config.Default(config.KeyNaiveLimit).(int), "largest catalog also solved by the plain exact search")
	fs.IntP(config.KeyWorkers, "w", config.Default(config.KeyWorkers).(int), "parallel trials")

	return cmd
}

type trialStats struct {
	Trial       int           `json:"trial" yaml:"trial"`
	Items       int           `json:"items" yaml:"items"`
	Greedy      float64       `json:"greedy" yaml:"greedy"`
	Exact       float64       `json:"exact" yaml:"exact"`
	Gap         float64       `json:"gap" yaml:"gap"`
	Calls       int           `json:"calls" yaml:"calls"`
	NaiveCalls  int           `json:"naive_calls,omitempty" yaml:"naive_calls,omitempty"`
	MemoEntries int           `json:"memo_entries" yaml:"memo_entries"`
	MemoHits    int           `json:"memo_hits" yaml:"memo_hits"`
	Elapsed     time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

type benchSummary struct {
	Seed    int64        `json:"seed" yaml:"seed"`
	Budget  float64      `json:"budget" yaml:"budget"`
	Rank    string       `json:"rank" yaml:"rank"`
	Trials  []trialStats `json:"trials" yaml:"trials"`
	MeanGap float64      `json:"mean_gap" yaml:"mean_gap"`
	MaxGap  float64      `json:"max_gap" yaml:"max_gap"`
}

// runBench generates every catalog up front from a single base RNG so the
// result does not depend on scheduling, then solves them concurrently.
func runBench(ctx context.Context, log *slog.Logger, s config.Settings) (benchSummary, error) {
	base := rand.New(rand.NewSource(s.Seed))
	catalogs := make([]item.Catalog, s.Trials)
	var err error
	for i := range catalogs {
		catalogs[i], err = builder.RandomCatalog(s.Items,
			builder.WithRand(builder.DeriveRand(base, uint64(i))),
			builder.WithSymbNumb("item"),
		)
		if err != nil {
			return benchSummary{}, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	stats := make([]trialStats, s.Trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, c := range catalogs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := runTrial(c, s)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			st.Trial = i
			stats[i] = st
			log.Debug("trial done",
				"trial", i,
				"exact", st.Exact,
				"greedy", st.Greedy,
				"calls", st.Calls,
				"elapsed", st.Elapsed,
			)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return benchSummary{}, err
	}

	sum := benchSummary{Seed: s.Seed, Budget: s.Budget, Rank: s.RankName, Trials: stats}
	for _, st := range stats {
		sum.MeanGap += st.Gap
		sum.MaxGap = max(sum.MaxGap, st.Gap)
	}
	sum.MeanGap /= float64(len(stats))
	log.Info("bench finished", "trials", len(stats), "mean_gap", sum.MeanGap, "max_gap", sum.MaxGap)

	return sum, nil
}

// runTrial solves one catalog with its own memo.
func runTrial(c item.Catalog, s config.Settings) (trialStats, error) {
	st := trialStats{Items: len(c)}

	greedy, err := solver.Greedy(c, s.Budget, s.Rank)
	if err != nil {
		return st, err
	}

	memo := solver.NewMemo()
	start := time.Now()
	exact, err := solver.ExactMemo(c, s.Budget, memo)
	if err != nil {
		return st, err
	}
	st.Elapsed = time.Since(start)

	if len(c) <= s.NaiveLimit {
		naive, err := solver.Exact(c, s.Budget)
		if err != nil {
			return st, err
		}
		if naive.Value != exact.Value {
			return st, fmt.Errorf("%w: %v vs %v", errDisagreement, naive.Value, exact.Value)
		}
		st.NaiveCalls = naive.Calls
	}

	st.Greedy = greedy.Value
	st.Exact = exact.Value
	st.Gap = exact.Value - greedy.Value
	st.Calls = exact.Calls
	st.MemoEntries = memo.Len()
	st.MemoHits = memo.Hits()

	return st, nil
}

func writeBench(w io.Writer, sum benchSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "trial\titems\tgreedy\texact\tgap\tcalls\tnaive calls\tmemo\thits\telapsed")
	for _, st := range sum.Trials {
		fmt.Fprintf(tw, "%d\t%d\t%v\t%v\t%v\t%d\t%d\t%d\t%d\t%v\n",
			st.Trial, st.Items, st.Greedy, st.Exact, st.Gap,
			st.Calls, st.NaiveCalls, st.MemoEntries, st.MemoHits, st.Elapsed)
	}
	tw.Flush()
	fmt.Fprintf(w, "Greedy by %s: mean gap %.2f, max gap %v\n", sum.Rank, sum.MeanGap, sum.MaxGap)
}
