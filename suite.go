package sortbench

// Suite measures a set of sorting strategies with one runner and builds
// the comparative report. The zero value is not usable; construct suites
// with [NewSuite].
type Suite struct {
	// Runner performs the timed trials. Callers may set Runner.OnTrial
	// before Run to observe individual trials.
	Runner *Runner

	// Sorters are the strategies to measure, in report order.
	Sorters []Sorter
}

// NewSuite returns a suite that measures the built-in strategies under
// the given configuration.
func NewSuite(cfg Config) *Suite {
	return &Suite{
		Runner:  NewRunner(cfg),
		Sorters: Strategies(),
	}
}

// Run measures every strategy in order and folds the results into a
// report. It stops at the first error; with a valid configuration the
// only errors are from report building.
func (s *Suite) Run() (*Report, error) {
	metrics := make([]Metrics, 0, len(s.Sorters))
	for _, sorter := range s.Sorters {
		m, err := s.Runner.Measure(sorter)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return BuildReport(metrics)
}
