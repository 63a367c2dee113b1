package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nn2opt/internal/config"
	"github.com/katalvlaran/nn2opt/internal/logger"
	"github.com/katalvlaran/nn2opt/tourio"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "nn2opt <input-file>",
		Short: "Approximate a Euclidean TSP tour with nearest neighbour and 2-opt",
		Long: `nn2opt reads "id x y" integer triples, builds a nearest-neighbour tour
starting at the lowest city ID, refines it with 2-opt until no exchange
shortens it, and writes the tour length followed by the city IDs to
<input-file><suffix>.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("invalid number of arguments: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			rep, err := run(args[0], cfg, log)
			if err != nil {
				log.Error("run failed", zap.String("input", args[0]), zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Running time: %g seconds\n", rep.Elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Optional config file (yaml, json, toml)")
	cmd.Flags().String("suffix", tourio.DefaultSuffix, "Suffix appended to the input path to name the output file")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "console", "Log format (console, json)")
	cmd.Flags().Bool("no-opt", false, "Skip 2-opt and write the nearest-neighbour tour")

	return cmd
}
