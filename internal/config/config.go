// SPDX-License-Identifier: MIT

// Package config resolves CLI settings with the precedence
// flag > KNAPSACK_* environment variable > config file > default.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/item"
	"github.com/katalvlaran/knapsack/solver"
)

// EnvPrefix prefixes every environment variable, e.g. KNAPSACK_BUDGET.
const EnvPrefix = "KNAPSACK"

// Setting keys; they double as flag names and config file keys.
const (
	KeyConfigFile = "config"
	KeyBudget     = "budget"
	KeyAlgorithm  = "algo"
	KeyRank       = "rank"
	KeyOutput     = "format"
	KeyCatalog    = "catalog"
	KeyItems      = "items"
	KeyTrials     = "trials"
	KeySeed       = "seed"
	KeyNaiveLimit = "naive-limit"
	KeyWorkers    = "workers"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
)

// Output formats accepted by KeyOutput.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidSetting wraps every validation failure.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Settings is the typed, validated view of the resolved configuration.
type Settings struct {
	Budget     float64
	Algorithm  solver.Algorithm
	Rank       item.RankKey
	RankName   string
	Output     string
	Catalog    string
	Items      int
	Trials     int
	Seed       int64
	NaiveLimit int
	Workers    int
	LogLevel   slog.Level
	LogFormat  logging.Format
}

var defaults = map[string]any{
	KeyBudget:     1000.0,
	KeyAlgorithm:  solver.AlgoExactMemo.String(),
	KeyRank:       "density",
	KeyOutput:     OutputText,
	KeyCatalog:    "",
	KeyItems:      40,
	KeyTrials:     8,
	KeySeed:       int64(1),
	KeyNaiveLimit: 20,
	KeyWorkers:    4,
	KeyLogLevel:   "info",
	KeyLogFormat:  "text",
}

// Default returns the default value registered for key, or nil.
// Commands use it for their flag defaults so both sources agree.
func Default(key string) any {
	return defaults[key]
}

// New returns a viper instance with defaults, environment binding and the
// given flags bound. A nil flag set binds no flags. When the resolved
// KeyConfigFile is non-empty that file is read as well.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return v, nil
}

// Load resolves and validates Settings from flags, environment and defaults.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v, err := New(flags)
	if err != nil {
		return Settings{}, err
	}

	return Decode(v)
}

// Decode converts a resolved viper instance into validated Settings.
func Decode(v *viper.Viper) (Settings, error) {
	var (
		s   Settings
		err error
	)

	s.Budget = v.GetFloat64(KeyBudget)
	s.Output = strings.ToLower(v.GetString(KeyOutput))
	s.Catalog = v.GetString(KeyCatalog)
	s.Items = v.GetInt(KeyItems)
	s.Trials = v.GetInt(KeyTrials)
	s.Seed = v.GetInt64(KeySeed)
	s.NaiveLimit = v.GetInt(KeyNaiveLimit)
	s.Workers = v.GetInt(KeyWorkers)

	if s.Algorithm, err = solver.ParseAlgorithm(v.GetString(KeyAlgorithm)); err != nil {
		return Settings{}, invalid(KeyAlgorithm, err)
	}
	s.RankName = strings.ToLower(strings.TrimSpace(v.GetString(KeyRank)))
	if s.Rank, err = item.ParseRankKey(s.RankName); err != nil {
		return Settings{}, invalid(KeyRank, err)
	}
	if s.LogLevel, err = logging.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return Settings{}, invalid(KeyLogLevel, err)
	}
	if s.LogFormat, err = logging.ParseFormat(v.GetString(KeyLogFormat)); err != nil {
		return Settings{}, invalid(KeyLogFormat, err)
	}

	if err = s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks ranges of the numeric settings and the output format.
func (s Settings) Validate() error {
	switch {
	case math.IsNaN(s.Budget) || math.IsInf(s.Budget, 0) || s.Budget < 0:
		return invalid(KeyBudget, fmt.Errorf("must be a finite number ≥ 0, got %v", s.Budget))
	case s.Items < 0:
		return invalid(KeyItems, fmt.Errorf("must be ≥ 0, got %d", s.Items))
	case s.Trials < 1:
		return invalid(KeyTrials, fmt.Errorf("must be ≥ 1, got %d", s.Trials))
	case s.NaiveLimit < 0:
		return invalid(KeyNaiveLimit, fmt.Errorf("must be ≥ 0, got %d", s.NaiveLimit))
	case s.Workers < 1:
		return invalid(KeyWorkers, fmt.Errorf("must be ≥ 1, got %d", s.Workers))
	}
	switch s.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return invalid(KeyOutput, fmt.Errorf("want text, json or yaml, got %q", s.Output))
	}

	return nil
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidSetting, key, err)
}
