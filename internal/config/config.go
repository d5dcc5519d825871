// Package config loads the dotted KEY=VALUE option surface of SPEC_FULL
// §6.3 into a typed Config via github.com/spf13/viper, the idiomatic
// pairing for github.com/spf13/cobra's flag set. Unknown keys or a value
// out of the documented numeric range is a Configuration Error
// (spec §7 category 2).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"itc2007-cct/internal/xerrors"
)

// LocalSearchConfig mirrors internal/heuristic.LocalSearchConfig; kept
// as a separate type so this package never imports internal/heuristic
// (config is loaded before any solving package is touched).
type LocalSearchConfig struct {
	Steepest bool
}

type HillClimbingConfig struct {
	MaxIdle int
}

type TabuSearchConfig struct {
	MaxIdle               int
	TabuTenure            int
	FrequencyPenaltyCoeff float64
	RandomPick            bool
	Steepest              bool
	ClearOnBest           bool
}

type SimulatedAnnealingConfig struct {
	MaxIdle                int
	InitialTemperature     float64
	CoolingRate            float64
	MinTemperature         float64
	TemperatureLengthCoeff float64
}

// Config is the fully-resolved, validated configuration surface bound
// from the dotted keys of SPEC_FULL §6.3.
type Config struct {
	SolverMethods                []string
	SolverMaxTime                int // seconds, 0 = no timeout
	SolverMaxCycles              int // 0 or negative = unbounded
	SolverMultistart             bool
	SolverRestoreBestAfterCycles int

	FinderRankingRandomness float64

	LS LocalSearchConfig
	HC HillClimbingConfig
	TS TabuSearchConfig
	SA SimulatedAnnealingConfig
}

// defaults mirrors the reference solver's own method defaults
// (hill_climbing_params_default, tabu_search_params_default,
// simulated_annealing_params_default).
func defaults() Config {
	return Config{
		SolverMaxTime:                60,
		SolverMaxCycles:              -1,
		SolverRestoreBestAfterCycles: 50,
		FinderRankingRandomness:      0.33,
		LS:                           LocalSearchConfig{Steepest: true},
		HC:                           HillClimbingConfig{MaxIdle: 120000},
		TS: TabuSearchConfig{
			MaxIdle:               50000,
			TabuTenure:            4,
			FrequencyPenaltyCoeff: 1.3,
		},
		SA: SimulatedAnnealingConfig{
			MaxIdle:                80000,
			InitialTemperature:     1.5,
			CoolingRate:            0.96,
			MinTemperature:         0.08,
			TemperatureLengthCoeff: 1,
		},
	}
}

// knownKeys lists every dotted key SPEC_FULL §6.3 documents. Anything
// else passed via --set or a config file is a Configuration Error.
var knownKeys = map[string]bool{
	"solver.methods": true, "solver.max_time": true, "solver.max_cycles": true,
	"solver.multistart": true, "solver.restore_best_after_cycles": true,
	"finder.ranking_randomness": true,
	"ls.steepest":               true,
	"hc.max_idle":               true,
	"ts.max_idle": true, "ts.tabu_tenure": true, "ts.frequency_penalty_coeff": true,
	"ts.random_pick": true, "ts.steepest": true, "ts.clear_on_best": true,
	"sa.max_idle": true, "sa.initial_temperature": true, "sa.cooling_rate": true,
	"sa.min_temperature": true, "sa.temperature_length_coeff": true,
}

// Load builds a Config from defaults, an optional config file, and a
// set of "KEY=VALUE" overrides applied in that order (highest
// precedence last), matching viper's own layered-source model.
func Load(configFile string, overrides []string) (Config, error) {
	v := viper.New()
	applyDefaults(v, defaults())

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, xerrors.NewConfigError(configFile, "cannot read config file: %v", err)
		}
		for _, key := range v.AllKeys() {
			if !knownKeys[key] {
				return Config{}, xerrors.NewConfigError(key, "unknown configuration key")
			}
		}
	}

	for _, kv := range overrides {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return Config{}, xerrors.NewConfigError(kv, "expected KEY=VALUE")
		}
		key = strings.TrimSpace(key)
		if !knownKeys[key] {
			return Config{}, xerrors.NewConfigError(key, "unknown configuration key")
		}
		v.Set(key, strings.TrimSpace(val))
	}

	return bind(v)
}

func applyDefaults(v *viper.Viper, d Config) {
	v.SetDefault("solver.methods", d.SolverMethods)
	v.SetDefault("solver.max_time", d.SolverMaxTime)
	v.SetDefault("solver.max_cycles", d.SolverMaxCycles)
	v.SetDefault("solver.multistart", d.SolverMultistart)
	v.SetDefault("solver.restore_best_after_cycles", d.SolverRestoreBestAfterCycles)
	v.SetDefault("finder.ranking_randomness", d.FinderRankingRandomness)
	v.SetDefault("ls.steepest", d.LS.Steepest)
	v.SetDefault("hc.max_idle", d.HC.MaxIdle)
	v.SetDefault("ts.max_idle", d.TS.MaxIdle)
	v.SetDefault("ts.tabu_tenure", d.TS.TabuTenure)
	v.SetDefault("ts.frequency_penalty_coeff", d.TS.FrequencyPenaltyCoeff)
	v.SetDefault("ts.random_pick", d.TS.RandomPick)
	v.SetDefault("ts.steepest", d.TS.Steepest)
	v.SetDefault("ts.clear_on_best", d.TS.ClearOnBest)
	v.SetDefault("sa.max_idle", d.SA.MaxIdle)
	v.SetDefault("sa.initial_temperature", d.SA.InitialTemperature)
	v.SetDefault("sa.cooling_rate", d.SA.CoolingRate)
	v.SetDefault("sa.min_temperature", d.SA.MinTemperature)
	v.SetDefault("sa.temperature_length_coeff", d.SA.TemperatureLengthCoeff)
}

func bind(v *viper.Viper) (Config, error) {
	cfg := Config{}

	methodsRaw := v.GetString("solver.methods")
	if methodsRaw == "" {
		cfg.SolverMethods = nil
	} else {
		for _, m := range strings.Split(methodsRaw, ",") {
			m = strings.TrimSpace(m)
			switch m {
			case "ls", "hc", "ts", "sa":
				cfg.SolverMethods = append(cfg.SolverMethods, m)
			default:
				return Config{}, xerrors.NewConfigError("solver.methods", "unknown method keyword %q", m)
			}
		}
	}

	cfg.SolverMaxTime = v.GetInt("solver.max_time")
	if cfg.SolverMaxTime < 0 {
		return Config{}, xerrors.NewConfigError("solver.max_time", "must be >= 0")
	}
	cfg.SolverMaxCycles = v.GetInt("solver.max_cycles")
	cfg.SolverMultistart = v.GetBool("solver.multistart")
	cfg.SolverRestoreBestAfterCycles = v.GetInt("solver.restore_best_after_cycles")

	cfg.FinderRankingRandomness = v.GetFloat64("finder.ranking_randomness")
	if cfg.FinderRankingRandomness < 0 {
		return Config{}, xerrors.NewConfigError("finder.ranking_randomness", "must be >= 0")
	}

	cfg.LS.Steepest = v.GetBool("ls.steepest")

	cfg.HC.MaxIdle = v.GetInt("hc.max_idle")
	if cfg.HC.MaxIdle < 0 {
		return Config{}, xerrors.NewConfigError("hc.max_idle", "must be >= 0")
	}

	cfg.TS.MaxIdle = v.GetInt("ts.max_idle")
	cfg.TS.TabuTenure = v.GetInt("ts.tabu_tenure")
	cfg.TS.FrequencyPenaltyCoeff = v.GetFloat64("ts.frequency_penalty_coeff")
	cfg.TS.RandomPick = v.GetBool("ts.random_pick")
	cfg.TS.Steepest = v.GetBool("ts.steepest")
	cfg.TS.ClearOnBest = v.GetBool("ts.clear_on_best")
	if cfg.TS.MaxIdle < 0 {
		return Config{}, xerrors.NewConfigError("ts.max_idle", "must be >= 0")
	}
	if cfg.TS.TabuTenure < 0 {
		return Config{}, xerrors.NewConfigError("ts.tabu_tenure", "must be >= 0")
	}

	cfg.SA.MaxIdle = v.GetInt("sa.max_idle")
	cfg.SA.InitialTemperature = v.GetFloat64("sa.initial_temperature")
	cfg.SA.CoolingRate = v.GetFloat64("sa.cooling_rate")
	cfg.SA.MinTemperature = v.GetFloat64("sa.min_temperature")
	cfg.SA.TemperatureLengthCoeff = v.GetFloat64("sa.temperature_length_coeff")
	if cfg.SA.CoolingRate <= 0 || cfg.SA.CoolingRate >= 1 {
		return Config{}, xerrors.NewConfigError("sa.cooling_rate", "must be in (0,1), got %v", cfg.SA.CoolingRate)
	}
	if cfg.SA.InitialTemperature <= cfg.SA.MinTemperature {
		return Config{}, xerrors.NewConfigError("sa.initial_temperature", "must exceed sa.min_temperature")
	}

	return cfg, nil
}

// ParseKeyValue validates a single dotted "key=value" override string
// without applying it, with the same checks Load applies to each
// override.
func ParseKeyValue(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", xerrors.NewConfigError(s, "expected KEY=VALUE")
	}
	key = strings.TrimSpace(key)
	if !knownKeys[key] {
		return "", "", xerrors.NewConfigError(key, "unknown configuration key")
	}
	return key, strings.TrimSpace(value), nil
}
