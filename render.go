package sortbench

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Rule widths for the rendered report sections.
const (
	wideRule   = 80
	narrowRule = 40
)

// Reporter renders run progress and the final comparative report as
// human-readable text. It holds no state between calls; everything it
// prints is derived from the arguments.
type Reporter struct {
	out io.Writer
}

// NewReporter returns a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// RunHeader announces the run and echoes its configuration.
func (r *Reporter) RunHeader(cfg Config) {
	fmt.Fprintln(r.out, "Sorting Algorithm Performance Analyzer")
	fmt.Fprintln(r.out, strings.Repeat("=", wideRule))
	fmt.Fprintf(r.out, "Dataset size: %d elements per trial\n", cfg.DatasetSize)
	fmt.Fprintf(r.out, "Iterations: %d trials per strategy\n", cfg.Iterations)
	fmt.Fprintf(r.out, "Value range: %d - %d\n", cfg.MinValue, cfg.MaxValue)
}

// StrategyHeader announces the strategy about to be measured.
func (r *Reporter) StrategyHeader(name string, cfg Config) {
	fmt.Fprintf(r.out, "\nAnalyzing %s performance:\n", name)
	fmt.Fprintf(r.out, "Executing %d trials with %d elements...\n", cfg.Iterations, cfg.DatasetSize)
}

// StrategyDone marks the end of a strategy's trials.
func (r *Reporter) StrategyDone() {
	fmt.Fprintln(r.out, "✓ Analysis complete")
}

// ReportResults renders the comparative report: one block per strategy
// followed by the ranking summary.
func (r *Reporter) ReportResults(rep *Report) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", wideRule))
	fmt.Fprintln(r.out, "PERFORMANCE ANALYSIS REPORT")
	fmt.Fprintln(r.out, strings.Repeat("=", wideRule))

	for _, e := range rep.Entries {
		fmt.Fprintf(r.out, "\nAlgorithm: %s\n", e.Strategy)
		fmt.Fprintln(r.out, strings.Repeat("-", narrowRule))
		fmt.Fprintf(r.out, "Average execution time: %.3f ms\n", Milliseconds(e.Stats.Mean))
		fmt.Fprintf(r.out, "Minimum execution time: %.3f ms\n", Milliseconds(e.Stats.Min))
		fmt.Fprintf(r.out, "Maximum execution time: %.3f ms\n", Milliseconds(e.Stats.Max))
		fmt.Fprintf(r.out, "Correctness validation: %s\n", passFail(e.Correct))
	}

	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", wideRule))
	fmt.Fprintln(r.out, "PERFORMANCE SUMMARY")
	fmt.Fprintln(r.out, strings.Repeat("=", wideRule))
	fmt.Fprintf(r.out, "Optimal algorithm: %s (%.3f ms average)\n",
		rep.Optimal.Strategy, Milliseconds(rep.Optimal.Stats.Mean))

	fmt.Fprintln(r.out, "\nRelative performance:")
	for _, e := range rep.Entries {
		if e.Strategy == rep.Optimal.Strategy {
			fmt.Fprintf(r.out, "- %s: %.2fx (optimal)\n", e.Strategy, e.Ratio)
			continue
		}
		fmt.Fprintf(r.out, "- %s: %.2fx slower than optimal\n", e.Strategy, e.Ratio)
	}

	fmt.Fprintf(r.out, "\nReport %s generated %s\n",
		rep.ID, rep.GeneratedAt.Format(time.RFC3339))
}

// RunFooter closes the run output.
func (r *Reporter) RunFooter() {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", wideRule))
	fmt.Fprintln(r.out, "ANALYSIS COMPLETE")
	fmt.Fprintln(r.out, strings.Repeat("=", wideRule))
}

func passFail(ok bool) string {
	if ok {
		return "PASSED"
	}
	return "FAILED"
}
