package sortbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descendingSorter rewrites its input in strictly descending order, so
// validation fails on every dataset of two or more elements.
type descendingSorter struct{}

func (descendingSorter) Name() string { return "Descending" }

func (descendingSorter) Sort(data []int) {
	for i := range data {
		data[i] = len(data) - i
	}
}

func TestRunnerMeasure(t *testing.T) {
	cfg := Config{DatasetSize: 64, Iterations: 4, MinValue: 1, MaxValue: 100}
	runner := NewRunner(cfg)
	assert.Equal(t, cfg, runner.Config())

	var samples []time.Duration
	runner.OnTrial = func(ev TrialEvent) {
		samples = append(samples, ev.Elapsed)
	}

	m, err := runner.Measure(InsertionSort{})
	require.NoError(t, err)

	assert.Equal(t, "Insertion Sort", m.Strategy)
	assert.True(t, m.Correct)
	assert.Equal(t, 4, m.Stats.Count)
	assert.LessOrEqual(t, m.Stats.Min, m.Stats.Mean)
	assert.LessOrEqual(t, m.Stats.Mean, m.Stats.Max)

	// The runner folds exactly the durations it reported per trial.
	require.Len(t, samples, 4)
	assert.Equal(t, SummarizeDurations(samples), m.Stats)
}

func TestRunnerTrialEvents(t *testing.T) {
	runner := NewRunner(Config{DatasetSize: 8, Iterations: 3, MinValue: 1, MaxValue: 10})

	var events []TrialEvent
	runner.OnTrial = func(ev TrialEvent) { events = append(events, ev) }

	_, err := runner.Measure(BubbleSort{})
	require.NoError(t, err)

	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, "Bubble Sort", ev.Strategy)
		assert.Equal(t, i+1, ev.Trial)
		assert.Equal(t, 3, ev.Total)
		assert.True(t, ev.Sorted)
		assert.GreaterOrEqual(t, ev.Elapsed, time.Duration(0))
	}
}

func TestRunnerMeasureInvalidConfig(t *testing.T) {
	for _, iterations := range []int{0, -1} {
		runner := NewRunner(Config{DatasetSize: 10, Iterations: iterations, MinValue: 1, MaxValue: 10})
		_, err := runner.Measure(BubbleSort{})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}

	runner := NewRunner(Config{DatasetSize: -1, Iterations: 1, MinValue: 1, MaxValue: 10})
	_, err := runner.Measure(BubbleSort{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunnerMeasureEmptyDatasets(t *testing.T) {
	runner := NewRunner(Config{DatasetSize: 0, Iterations: 3, MinValue: 1, MaxValue: 10})

	m, err := runner.Measure(SelectionSort{})
	require.NoError(t, err)

	assert.True(t, m.Correct)
	assert.Equal(t, 3, m.Stats.Count)
	assert.LessOrEqual(t, m.Stats.Max, time.Millisecond)
}

func TestRunnerMeasureRecordsContractViolation(t *testing.T) {
	runner := NewRunner(Config{DatasetSize: 16, Iterations: 2, MinValue: 1, MaxValue: 100})

	var sortedFlags []bool
	runner.OnTrial = func(ev TrialEvent) { sortedFlags = append(sortedFlags, ev.Sorted) }

	m, err := runner.Measure(descendingSorter{})
	require.NoError(t, err)

	assert.False(t, m.Correct)
	assert.Equal(t, []bool{false, false}, sortedFlags)
	assert.Equal(t, 2, m.Stats.Count)
}
