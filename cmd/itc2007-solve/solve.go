package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"itc2007-cct/internal/config"
	"itc2007-cct/internal/driver"
	"itc2007-cct/internal/finder"
	"itc2007-cct/internal/heuristic"
	"itc2007-cct/internal/itcio"
	"itc2007-cct/internal/model"
	"itc2007-cct/internal/obs"
	"itc2007-cct/internal/report"
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
	"itc2007-cct/internal/xerrors"

	"go.uber.org/zap"
)

func newSolveCmd() *cobra.Command {
	var (
		timeSeconds int
		seed        int64
		seedSet     bool
		configFile  string
		setFlags    []string
		showStats   bool
	)

	cmd := &cobra.Command{
		Use:   "solve INPUT [OUTPUT]",
		Short: "Build and solve a timetabling instance",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := ""
			if len(args) == 2 {
				output = args[1]
			}

			cfg, err := config.Load(configFile, setFlags)
			if err != nil {
				return err
			}
			if timeSeconds > 0 {
				cfg.SolverMaxTime = timeSeconds
			}
			if len(cfg.SolverMethods) == 0 {
				cfg.SolverMethods = []string{"ls", "hc", "ts", "sa"}
			}

			if !seedSet {
				seed = time.Now().UnixNano()
			}
			stream := rng.New(seed)
			fmt.Printf("seed = %d\n", stream.Seed(seed))

			m, err := readInstance(input)
			if err != nil {
				return err
			}

			methods, err := buildMethods(cfg)
			if err != nil {
				return err
			}

			driverCfg := driver.Config{
				Methods:                methods,
				MaxTime:                time.Duration(cfg.SolverMaxTime) * time.Second,
				MaxCycles:              cfg.SolverMaxCycles,
				Multistart:             cfg.SolverMultistart,
				RestoreBestAfterCycles: cfg.SolverRestoreBestAfterCycles,
				FinderConfig:           finder.Config{RankingRandomness: cfg.FinderRankingRandomness},
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			template := tt.New(m)
			result, err := driver.Run(ctx, template, driverCfg, stream)
			if err != nil {
				return err
			}
			if result.Best == nil {
				return xerrors.NewInfeasibleError(0)
			}

			obs.L().Info("solve finished",
				zap.Int("cost", result.Best.Cost()),
				zap.Int("cycles", result.Stats.CycleCount))

			if showStats {
				printStats(result.Stats)
			}

			if err := report.Summary(os.Stdout, result.Best); err != nil {
				return err
			}

			return writeSolution(output, m, result.Best)
		},
	}

	cmd.Flags().IntVar(&timeSeconds, "time", 0, "time budget in seconds (0 = use config default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (random if omitted)")
	cmd.Flags().StringVar(&configFile, "config", "", "dotted KEY=VALUE or YAML config file")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "inline KEY=VALUE override (repeatable)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print solver statistics after solving")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		seedSet = cmd.Flags().Changed("seed")
	}

	return cmd
}

func readInstance(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.NewInputError(path, 0, "cannot open: %v", err)
	}
	defer f.Close()
	return itcio.ReadInstance(path, f)
}

func writeSolution(path string, m *model.Model, sol *tt.Solution) error {
	if path == "" {
		return itcio.WriteSolution(os.Stdout, m, sol)
	}
	f, err := os.Create(path)
	if err != nil {
		return xerrors.NewInputError(path, 0, "cannot create: %v", err)
	}
	defer f.Close()
	return itcio.WriteSolution(f, m, sol)
}

// buildMethods translates the resolved cfg.SolverMethods keyword list
// into driver.Method closures over the matching internal/heuristic
// entry point.
func buildMethods(cfg config.Config) ([]driver.Method, error) {
	methods := make([]driver.Method, 0, len(cfg.SolverMethods))
	for _, key := range cfg.SolverMethods {
		switch key {
		case "ls":
			c := heuristic.LocalSearchConfig{Steepest: cfg.LS.Steepest}
			methods = append(methods, driver.Method{
				Name: "LS",
				Run: func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream) {
					heuristic.LocalSearch(ctx, mc, c)
				},
			})
		case "hc":
			c := heuristic.HillClimbingConfig{MaxIdle: cfg.HC.MaxIdle}
			methods = append(methods, driver.Method{
				Name: "HC",
				Run: func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream) {
					heuristic.HillClimbing(ctx, mc, c, stream)
				},
			})
		case "ts":
			c := heuristic.TabuSearchConfig{
				MaxIdle:               cfg.TS.MaxIdle,
				TabuTenure:            cfg.TS.TabuTenure,
				FrequencyPenaltyCoeff: cfg.TS.FrequencyPenaltyCoeff,
				RandomPick:            cfg.TS.RandomPick,
				Steepest:              cfg.TS.Steepest,
				ClearOnBest:           cfg.TS.ClearOnBest,
			}
			methods = append(methods, driver.Method{
				Name: "TS",
				Run: func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream) {
					heuristic.TabuSearch(ctx, mc, c, stream)
				},
			})
		case "sa":
			c := heuristic.SimulatedAnnealingConfig{
				MaxIdle:                cfg.SA.MaxIdle,
				InitialTemperature:     cfg.SA.InitialTemperature,
				CoolingRate:            cfg.SA.CoolingRate,
				MinTemperature:         cfg.SA.MinTemperature,
				TemperatureLengthCoeff: cfg.SA.TemperatureLengthCoeff,
			}
			methods = append(methods, driver.Method{
				Name: "SA",
				Run: func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream) {
					heuristic.SimulatedAnnealing(ctx, mc, c, stream)
				},
			})
		default:
			return nil, xerrors.NewConfigError("solver.methods", "unknown method keyword %q", key)
		}
	}
	return methods, nil
}

func printStats(s driver.Stats) {
	fmt.Printf("cycles = %d, best restored = %d\n", s.CycleCount, s.BestRestoredCount)
	for _, m := range s.Methods {
		fmt.Printf("  %-4s moves=%d improvements=%d time=%s\n", m.Name, m.MovesApplied, m.ImprovementCount, m.ExecutionTime)
	}
}
