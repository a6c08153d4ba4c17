package sortbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuiteRun(t *testing.T) {
	suite := NewSuite(Config{DatasetSize: 200, Iterations: 3, MinValue: 1, MaxValue: 1000})

	trials := 0
	suite.Runner.OnTrial = func(TrialEvent) { trials++ }

	rep, err := suite.Run()
	require.NoError(t, err)

	assert.Equal(t, 9, trials)
	require.Len(t, rep.Entries, 3)

	var names []string
	for _, e := range rep.Entries {
		names = append(names, e.Strategy)
		assert.True(t, e.Correct)
		assert.GreaterOrEqual(t, e.Ratio, 1.0)
		assert.Equal(t, 3, e.Stats.Count)
	}
	assert.Equal(t, []string{"Bubble Sort", "Selection Sort", "Insertion Sort"}, names)
	assert.InDelta(t, 1.0, rep.Optimal.Ratio, 1e-9)
}

func TestSuiteRunInvalidConfig(t *testing.T) {
	suite := NewSuite(Config{DatasetSize: 10, Iterations: 0, MinValue: 1, MaxValue: 10})
	_, err := suite.Run()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSuiteCustomSorters(t *testing.T) {
	suite := NewSuite(Config{DatasetSize: 16, Iterations: 2, MinValue: 1, MaxValue: 100})
	suite.Sorters = []Sorter{InsertionSort{}, descendingSorter{}}

	rep, err := suite.Run()
	require.NoError(t, err)

	require.Len(t, rep.Entries, 2)
	assert.True(t, rep.Entries[0].Correct)
	assert.False(t, rep.Entries[1].Correct)
}
