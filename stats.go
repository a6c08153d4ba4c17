package sortbench

import "time"

// DurationStats summarizes a series of trial durations.
type DurationStats struct {
	Mean  time.Duration // arithmetic mean over all samples
	Min   time.Duration // fastest sample
	Max   time.Duration // slowest sample
	Count int           // number of samples
}

// SummarizeDurations folds a series of samples into summary statistics.
// An empty series yields the zero value. The input is never modified.
func SummarizeDurations(samples []time.Duration) DurationStats {
	if len(samples) == 0 {
		return DurationStats{}
	}
	stats := DurationStats{
		Min:   samples[0],
		Max:   samples[0],
		Count: len(samples),
	}
	var total time.Duration
	for _, d := range samples {
		total += d
		if d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
	}
	stats.Mean = total / time.Duration(len(samples))
	return stats
}

// Milliseconds converts a duration to fractional milliseconds, the unit
// reports are rendered in.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
