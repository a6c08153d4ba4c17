// Package sortbench benchmarks classic in-memory sorting algorithms against
// randomly generated integer datasets.
//
// # Overview
//
// sortbench is a small measurement harness built for teaching: it shows how
// to structure repeated timed trials around interchangeable algorithm
// implementations. It provides:
//
//   - Three textbook comparison sorts (bubble, selection, insertion) behind a
//     single Sorter capability
//   - A trial runner that times each sort on a fresh uniformly random dataset
//     and validates the result
//   - Pure statistical aggregation (mean, minimum, maximum) over the observed
//     trial durations
//   - A comparative report ranking strategies by mean duration
//
// # Quick Start
//
//	import "github.com/algoperf/sortbench"
//
//	func main() {
//	    suite := sortbench.NewSuite(sortbench.DefaultConfig())
//	    report, err := suite.Run()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, entry := range report.Entries {
//	        fmt.Printf("%s: %.3f ms mean (%.2fx)\n",
//	            entry.Strategy, sortbench.Milliseconds(entry.Stats.Mean), entry.Ratio)
//	    }
//	    fmt.Println("optimal:", report.Optimal.Strategy)
//	}
//
// # Driving the Runner Directly
//
// Presentation layers that want to interleave their own output with the
// measurements drive the Runner one strategy at a time:
//
//	runner := sortbench.NewRunner(cfg)
//	runner.OnTrial = func(ev sortbench.TrialEvent) {
//	    fmt.Printf("%s: trial %d/%d\n", ev.Strategy, ev.Trial, ev.Total)
//	}
//
//	var metrics []sortbench.Metrics
//	for _, s := range sortbench.Strategies() {
//	    m, err := runner.Measure(s)
//	    if err != nil {
//	        return err
//	    }
//	    metrics = append(metrics, m)
//	}
//	report, err := sortbench.BuildReport(metrics)
//
// # Measurement Contract
//
// Every trial sorts a dataset owned by that trial alone; nothing is shared
// between trials or strategies, and evaluation is strictly sequential. A
// strategy whose output fails validation is recorded with Correct=false and
// surfaced in the report rather than aborting the run. Invalid configuration
// (zero iterations, negative dataset size, an empty value range, or an empty
// metrics collection at report time) fails fast with an error wrapping
// ErrInvalidConfig before any timing begins.
package sortbench
