package sortbench

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ReportEntry is one strategy's row in a comparative report.
type ReportEntry struct {
	Metrics

	// Ratio is this strategy's mean time relative to the fastest
	// strategy's mean. The fastest entry has ratio 1.0.
	Ratio float64
}

// Report compares the measured strategies of one run.
type Report struct {
	ID          string        // unique identifier for this report
	GeneratedAt time.Time     // when the report was built
	Entries     []ReportEntry // one per strategy, in measurement order
	Optimal     ReportEntry   // the entry with the lowest mean time
}

// BuildReport folds per-strategy metrics into a comparative report.
// The optimal entry is the one with the strictly lowest mean; on ties the
// earliest entry wins. Building a report from no metrics is an error.
func BuildReport(metrics []Metrics) (*Report, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: report needs at least one measured strategy", ErrInvalidConfig)
	}

	optimal := 0
	for i, m := range metrics {
		if m.Stats.Mean < metrics[optimal].Stats.Mean {
			optimal = i
		}
	}

	rep := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Entries:     make([]ReportEntry, len(metrics)),
	}
	for i, m := range metrics {
		rep.Entries[i] = ReportEntry{
			Metrics: m,
			Ratio:   slowdown(m.Stats.Mean, metrics[optimal].Stats.Mean),
		}
	}
	rep.Optimal = rep.Entries[optimal]
	return rep, nil
}

// slowdown returns mean/optimal as a ratio. A zero optimal mean can
// happen on trivial datasets where the clock never ticks; every zero mean
// then counts as optimal and any slower mean is infinitely worse.
func slowdown(mean, optimal time.Duration) float64 {
	if optimal <= 0 {
		if mean <= 0 {
			return 1.0
		}
		return math.Inf(1)
	}
	return float64(mean) / float64(optimal)
}
