// SPDX-License-Identifier: MIT

// Command knapsack compares greedy and exact 0/1 knapsack selection.
//
// Usage:
//
//	knapsack demo  [--budget 1000]
//	knapsack solve [--catalog JSON|@file|-] [--budget B] [--algo exact-memo] [--rank density] [--format text]
//	knapsack bench [--items 40] [--trials 8] [--seed 1] [--budget 1000] [--naive-limit 20] [--workers 4]
//
// Every flag may also be set through a KNAPSACK_* environment variable
// (dashes become underscores) or a --config file.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
