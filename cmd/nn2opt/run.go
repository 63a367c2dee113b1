package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/nn2opt/internal/config"
	"github.com/katalvlaran/nn2opt/tourio"
	"github.com/katalvlaran/nn2opt/tsp"
)

// report summarizes one run of the command.
type report struct {
	Output  string
	Result  tsp.Result
	Elapsed time.Duration
}

// run reads the cities of input, solves them and writes the tour file.
// Elapsed covers everything from the read to the final write.
func run(input string, cfg config.Config, log *zap.Logger) (report, error) {
	start := time.Now()

	cities, st, err := tourio.ReadCitiesFile(input)
	if err != nil {
		return report{}, err
	}
	log.Info("read cities",
		zap.String("input", input),
		zap.Int("cities", st.Cities),
		zap.Int("duplicates", st.Duplicates),
		zap.Bool("truncated", st.Truncated),
	)

	opts := tsp.Options{SkipTwoOpt: cfg.NoOpt}
	if log.Core().Enabled(zap.DebugLevel) {
		opts.OnSwap = func(s tsp.Swap) {
			log.Debug("2-opt swap",
				zap.Int("i", s.I),
				zap.Int("j", s.J),
				zap.Int("delta", s.Delta),
				zap.Int("length", s.Length),
			)
		}
	}

	res, err := tsp.SolveCities(cities, opts)
	if err != nil {
		return report{}, fmt.Errorf("solve %s: %w", input, err)
	}
	log.Info("tour built",
		zap.Int("initial_length", res.InitialLength),
		zap.Int("length", res.Length),
		zap.Int("passes", res.Stats.Passes),
		zap.Int("swaps", res.Stats.Swaps),
	)

	out := tourio.OutputPath(input, cfg.Suffix)
	if err = tourio.WriteTourFile(out, res.Length, res.Tour); err != nil {
		return report{}, err
	}

	rep := report{Output: out, Result: res, Elapsed: time.Since(start)}
	log.Info("tour written", zap.String("output", out), zap.Duration("elapsed", rep.Elapsed))

	return rep, nil
}
