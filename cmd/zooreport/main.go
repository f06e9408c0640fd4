package main

import (
	"fmt"
	"io"
	"os"

	"zoo-arrivals-report/internal/platform/config"
	"zoo-arrivals-report/internal/platform/logger"
	"zoo-arrivals-report/internal/runner"

	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	arrivals   string
	enclosures string
	report     string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd(os.Stdout, os.LookupEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "zooreport",
		Short: "Build the zoo arrivals report grouped by species",
		Long: `Reads the arriving animals file, joins each animal with its enclosure
by name, groups them by species and writes a plain-text report.

A missing enclosures file is not fatal: the report is still written and
every enclosure shows as None.

Example:
  zooreport --arrivals arrivingAnimals.txt --enclosures animalEnclosures.txt --report zooReport.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f, lookupEnv)
			if err != nil {
				return err
			}

			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
			})
			defer func() { _ = log.Sync() }()

			sum, err := runner.Run(cmd.Context(), runner.Options{
				ArrivalsPath:   cfg.ArrivalsPath,
				EnclosuresPath: cfg.EnclosuresPath,
				ReportPath:     cfg.ReportPath,
				Logger:         log,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Report successfully generated in %s\n", sum.ReportPath)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "optional YAML config file")
	fl.StringVar(&f.arrivals, "arrivals", "", "arrivals file (default "+config.DefaultArrivalsPath+")")
	fl.StringVar(&f.enclosures, "enclosures", "", "enclosures file (default "+config.DefaultEnclosuresPath+")")
	fl.StringVar(&f.report, "report", "", "report output file (default "+config.DefaultReportPath+")")
	fl.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error")
	fl.StringVar(&f.logFormat, "log-format", "", "text|json")

	return cmd
}

func resolveConfig(f flags, lookupEnv func(string) (string, bool)) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		if err := cfg.LoadFile(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg.ApplyEnv(lookupEnv)
	cfg.Override(config.Config{
		ArrivalsPath:   f.arrivals,
		EnclosuresPath: f.enclosures,
		ReportPath:     f.report,
		Log: config.LogConfig{
			Level:  f.logLevel,
			Format: f.logFormat,
		},
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
