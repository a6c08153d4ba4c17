// sortbench measures the built-in sorting strategies against random
// datasets and prints a comparative performance report.
package main

import (
	"fmt"
	"os"

	"github.com/algoperf/sortbench"
	"github.com/spf13/cobra"
)

func main() {
	cfg := sortbench.DefaultConfig()
	barWidth := sortbench.DefaultBarWidth
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark the built-in sorting strategies and rank them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(cfg, barWidth, noProgress); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVar(&cfg.DatasetSize, "size", cfg.DatasetSize, "elements per trial dataset")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "timed trials per strategy")
	cmd.Flags().IntVar(&cfg.MinValue, "min", cfg.MinValue, "inclusive lower bound for generated values")
	cmd.Flags().IntVar(&cfg.MaxValue, "max", cfg.MaxValue, "inclusive upper bound for generated values")
	cmd.Flags().IntVar(&barWidth, "bar-width", barWidth, "progress bar width in segments")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the per-trial progress bar")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg sortbench.Config, barWidth int, noProgress bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	reporter := sortbench.NewReporter(os.Stdout)
	runner := sortbench.NewRunner(cfg)

	if !noProgress {
		bar := sortbench.NewProgressBar(os.Stdout)
		bar.Width = barWidth
		runner.OnTrial = bar.Observe
	}

	reporter.RunHeader(cfg)

	strategies := sortbench.Strategies()
	metrics := make([]sortbench.Metrics, 0, len(strategies))
	for _, s := range strategies {
		reporter.StrategyHeader(s.Name(), cfg)
		m, err := runner.Measure(s)
		if err != nil {
			return err
		}
		reporter.StrategyDone()
		metrics = append(metrics, m)
	}

	rep, err := sortbench.BuildReport(metrics)
	if err != nil {
		return err
	}
	reporter.ReportResults(rep)
	reporter.RunFooter()
	return nil
}
