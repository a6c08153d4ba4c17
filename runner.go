package sortbench

import "time"

// TrialEvent describes one completed timed trial. The runner emits an
// event after every trial; observers can render progress or collect the
// raw samples.
type TrialEvent struct {
	Strategy string        // display name of the strategy under test
	Trial    int           // 1-based index of this trial
	Total    int           // total trials in the run
	Elapsed  time.Duration // wall time the sort took
	Sorted   bool          // whether the output passed validation
}

// TrialFunc observes completed trials. Implementations must not retain
// the event past the call.
type TrialFunc func(TrialEvent)

// Metrics is the measured outcome for a single strategy.
type Metrics struct {
	Strategy string        // display name of the strategy
	Stats    DurationStats // timing summary over all trials
	Correct  bool          // true only if every trial produced sorted output
}

// Runner measures sorting strategies against freshly generated datasets.
type Runner struct {
	// OnTrial, when non-nil, is called after each timed trial.
	OnTrial TrialFunc

	cfg Config
	gen *Generator
}

// NewRunner returns a runner for the given configuration. The
// configuration is validated by Measure, not here.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg: cfg,
		gen: NewGenerator(cfg.MinValue, cfg.MaxValue),
	}
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Measure runs the configured number of timed trials against s and folds
// them into Metrics. Each trial sorts a fresh dataset. A trial that leaves
// its dataset unsorted marks the metrics incorrect but does not stop the
// run; only an invalid configuration returns an error.
func (r *Runner) Measure(s Sorter) (Metrics, error) {
	if err := r.cfg.Validate(); err != nil {
		return Metrics{}, err
	}

	samples := make([]time.Duration, 0, r.cfg.Iterations)
	correct := true
	for trial := 1; trial <= r.cfg.Iterations; trial++ {
		data := r.gen.Dataset(r.cfg.DatasetSize)

		start := time.Now()
		s.Sort(data)
		elapsed := time.Since(start)

		sorted := IsSorted(data)
		correct = correct && sorted
		samples = append(samples, elapsed)

		if r.OnTrial != nil {
			r.OnTrial(TrialEvent{
				Strategy: s.Name(),
				Trial:    trial,
				Total:    r.cfg.Iterations,
				Elapsed:  elapsed,
				Sorted:   sorted,
			})
		}
	}

	return Metrics{
		Strategy: s.Name(),
		Stats:    SummarizeDurations(samples),
		Correct:  correct,
	}, nil
}
