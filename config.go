package sortbench

import (
	"errors"
	"fmt"
)

// Defaults for a benchmark run, small enough that a full run finishes in
// well under a second on current hardware.
const (
	DefaultDatasetSize = 1000  // elements generated per trial
	DefaultIterations  = 5     // timed trials per strategy
	DefaultMinValue    = 1     // inclusive lower bound for generated values
	DefaultMaxValue    = 10000 // inclusive upper bound for generated values
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
// Callers test for it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the tunable parameters for a benchmark run.
type Config struct {
	DatasetSize int // elements per trial dataset, >= 0
	Iterations  int // timed trials per strategy, >= 1
	MinValue    int // inclusive lower bound for generated values
	MaxValue    int // inclusive upper bound, >= MinValue
}

// DefaultConfig returns the stock configuration: 1000-element datasets,
// 5 trials per strategy, values drawn from 1..10000.
func DefaultConfig() Config {
	return Config{
		DatasetSize: DefaultDatasetSize,
		Iterations:  DefaultIterations,
		MinValue:    DefaultMinValue,
		MaxValue:    DefaultMaxValue,
	}
}

// Validate reports whether the configuration describes a measurable run.
// It never mutates the configuration; a run with zero iterations or a
// negative dataset size is rejected here, before any timing begins.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.DatasetSize < 0 {
		return fmt.Errorf("%w: dataset size must not be negative, got %d", ErrInvalidConfig, c.DatasetSize)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: value range %d..%d is empty", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	return nil
}
