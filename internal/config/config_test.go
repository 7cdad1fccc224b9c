package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyConfigFile, "", "")
	fs.Float64(KeyBudget, Default(KeyBudget).(float64), "")
	fs.String(KeyAlgorithm, Default(KeyAlgorithm).(string), "")
	fs.String(KeyRank, Default(KeyRank).(string), "")
	fs.Int(KeyItems, Default(KeyItems).(int), "")
	fs.String(KeyOutput, Default(KeyOutput).(string), "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, s.Budget)
	assert.Equal(t, solver.AlgoExactMemo, s.Algorithm)
	assert.Equal(t, "density", s.RankName)
	assert.NotNil(t, s.Rank)
	assert.Equal(t, OutputText, s.Output)
	assert.Equal(t, 40, s.Items)
	assert.Equal(t, 8, s.Trials)
	assert.Equal(t, int64(1), s.Seed)
	assert.Equal(t, 20, s.NaiveLimit)
	assert.Equal(t, 4, s.Workers)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, logging.FormatText, s.LogFormat)
}

// TestLoad_Precedence checks flag > env > default.
func TestLoad_Precedence(t *testing.T) {
	fs := newFlags(t)

	s, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, s.Budget, "flag default")

	t.Setenv("KNAPSACK_BUDGET", "750")
	t.Setenv("KNAPSACK_NAIVE_LIMIT", "12")
	t.Setenv("KNAPSACK_ALGO", "greedy")
	s, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 750.0, s.Budget, "env beats unchanged flag")
	assert.Equal(t, 12, s.NaiveLimit, "dashes map to underscores")
	assert.Equal(t, solver.AlgoGreedy, s.Algorithm)

	require.NoError(t, fs.Parse([]string{"--budget", "123", "--algo", "exact"}))
	s, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 123.0, s.Budget, "changed flag beats env")
	assert.Equal(t, solver.AlgoExact, s.Algorithm)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget: 321\nrank: value\nformat: yaml\n"), 0o600))

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--config", path}))
	s, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 321.0, s.Budget)
	assert.Equal(t, "value", s.RankName)
	assert.Equal(t, OutputYAML, s.Output)

	it, err := item.New("x", 9, 3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Rank(it))
}

func TestLoad_MissingConfigFile(t *testing.T) {
	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
	_, err := Load(fs)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		env, value string
		cause      error
	}{
		{"KNAPSACK_ALGO", "simulated-annealing", solver.ErrUnsupportedAlgorithm},
		{"KNAPSACK_RANK", "weight", item.ErrUnknownRankKey},
		{"KNAPSACK_LOG_LEVEL", "loud", logging.ErrUnknownLevel},
		{"KNAPSACK_LOG_FORMAT", "xml", logging.ErrUnknownFormat},
		{"KNAPSACK_BUDGET", "-5", nil},
		{"KNAPSACK_FORMAT", "csv", nil},
		{"KNAPSACK_TRIALS", "0", nil},
		{"KNAPSACK_WORKERS", "0", nil},
	}
	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv(tc.env, tc.value)
			_, err := Load(nil)
			require.ErrorIs(t, err, ErrInvalidSetting)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}
