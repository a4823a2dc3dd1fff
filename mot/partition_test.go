package mot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByThreshold(t *testing.T) {
	agents := []int{0, 1, 2, 3, 4}
	tasks := []int{10, 11, 12, 13, 14}
	costs := []float64{7, 1, 9, 3, 5}

	split, err := PartitionByThreshold(agents, tasks, costs, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, split)
	// Kept triples stay in encounter order
	assert.Equal(t, []int{1, 3, 4}, agents[:split])
	assert.Equal(t, []int{11, 13, 14}, tasks[:split])
	assert.Equal(t, []float64{1, 3, 5}, costs[:split])
	assert.ElementsMatch(t, []int{0, 2}, agents[split:])
	for k := split; k < len(costs); k++ {
		assert.Greater(t, costs[k], 5.0)
		assert.Equal(t, agents[k]+10, tasks[k], "triple must stay aligned")
	}
}

func TestPartitionByThresholdEdges(t *testing.T) {
	split, err := PartitionByThreshold([]int{}, []int{}, []float64{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, split)

	split, err = PartitionByThreshold([]int{0, 1}, []int{0, 1}, []float64{2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, split)

	split, err = PartitionByThreshold([]int{0, 1}, []int{0, 1}, []float64{2, 3}, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 2, split)

	split, err = PartitionByThreshold([]int{0}, []int{0}, []float64{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, split)
}

func TestPartitionByThresholdSizeMismatch(t *testing.T) {
	_, err := PartitionByThreshold([]int{0, 1}, []int{0}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = PartitionByThreshold([]int{0}, []int{0}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
