package mot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHungarianAssign(t *testing.T) {
	tests := []struct {
		name       string
		cost       CostMatrix
		wantAgents []int
		wantTasks  []int
	}{
		{
			name:       "identity",
			cost:       CostMatrix{{0, 10, 10}, {10, 0, 10}, {10, 10, 0}},
			wantAgents: []int{0, 1, 2},
			wantTasks:  []int{0, 1, 2},
		},
		{
			name:       "anti-diagonal",
			cost:       CostMatrix{{9, 9, 1}, {9, 1, 9}, {1, 9, 9}},
			wantAgents: []int{0, 1, 2},
			wantTasks:  []int{2, 1, 0},
		},
		{
			name:       "classic 3x3",
			cost:       CostMatrix{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}},
			wantAgents: []int{0, 1, 2},
			wantTasks:  []int{1, 0, 2},
		},
		{
			name:       "wide",
			cost:       CostMatrix{{5, 1, 7, 3}, {2, 8, 1, 6}},
			wantAgents: []int{0, 1},
			wantTasks:  []int{1, 2},
		},
		{
			name:       "tall",
			cost:       CostMatrix{{5, 2}, {1, 8}, {3, 3}, {7, 0}},
			wantAgents: []int{1, 3},
			wantTasks:  []int{0, 1},
		},
		{
			name:       "single cell",
			cost:       CostMatrix{{3.5}},
			wantAgents: []int{0},
			wantTasks:  []int{0},
		},
		{
			name:       "negative costs",
			cost:       CostMatrix{{-1, -5}, {-4, -2}},
			wantAgents: []int{0, 1},
			wantTasks:  []int{1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agents, tasks := hungarianAssign(tt.cost, false)
			assert.Equal(t, tt.wantAgents, agents)
			assert.Equal(t, tt.wantTasks, tasks)
		})
	}
}

func TestHungarianAssignTieBreak(t *testing.T) {
	// Every assignment is optimal: lowest column goes to the first row
	agents, tasks := hungarianAssign(CostMatrix{{1, 1}, {1, 1}}, false)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{0, 1}, tasks)

	agents, tasks = hungarianAssign(CostMatrix{{2, 2, 2}}, false)
	assert.Equal(t, []int{0}, agents)
	assert.Equal(t, []int{0}, tasks)
}

func TestHungarianAssignDoesNotMutateInput(t *testing.T) {
	cost := CostMatrix{{1, 2}, {3, 4}, {5, 6}}
	original := cost.Clone()
	hungarianAssign(cost, true)
	hungarianAssign(cost, false)
	assert.Equal(t, original, cost)
}

func TestHungarianAssignMaximizeAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 100; iter++ {
		cost := randomCostMatrix(rng, 1+rng.Intn(5), 1+rng.Intn(5), 50)
		agents, tasks := hungarianAssign(cost, true)
		require.InDelta(t, -bruteForceMin(negate(cost)), totalCost(cost, agents, tasks), 1e-9, "iteration %d", iter)
	}
}

func TestGreedyAssign(t *testing.T) {
	// Greedy takes (0,0)=1 first and ends up with (1,1)=100 instead of optimal 2+3
	cost := CostMatrix{{1, 2}, {3, 100}}
	agents, tasks := greedyAssign(cost, false)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{0, 1}, tasks)

	agents, tasks = hungarianAssign(cost, false)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{1, 0}, tasks)

	agents, tasks = greedyAssign(CostMatrix{{1, 9}, {9, 1}, {0, 5}}, false)
	assert.Equal(t, []int{1, 2}, agents)
	assert.Equal(t, []int{1, 0}, tasks)

	agents, tasks = greedyAssign(CostMatrix{{1, 9}, {9, 1}}, true)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{1, 0}, tasks)
}

func TestHungarianLibAssign(t *testing.T) {
	agents, tasks := hungarianLibAssign(CostMatrix{{1, 9}, {9, 1}}, false)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{0, 1}, tasks)

	agents, tasks = hungarianLibAssign(CostMatrix{{1, 9}, {9, 1}}, true)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{1, 0}, tasks)

	agents, tasks = hungarianLibAssign(CostMatrix{{1, 50}, {50, 1}, {30, 30}}, false)
	assert.Equal(t, []int{0, 1}, agents)
	assert.Equal(t, []int{0, 1}, tasks)
}

func TestHungarianLibAssignOptimal(t *testing.T) {
	// Matrices on which the library alone returns a worse pairing
	agents, tasks := hungarianLibAssign(CostMatrix{{7, 9, 1}, {8, 5, 0}}, false)
	assert.Equal(t, 6.0, totalCost(CostMatrix{{7, 9, 1}, {8, 5, 0}}, agents, tasks))

	square := CostMatrix{{9, 3, 7, 4}, {3, 1, 9, 9}, {3, 1, 0, 0}, {6, 1, 3, 1}}
	agents, tasks = hungarianLibAssign(square, true)
	assert.Equal(t, 23.0, totalCost(square, agents, tasks))

	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 300; iter++ {
		cost := randomCostMatrix(rng, 1+rng.Intn(5), 1+rng.Intn(5), 10)
		for _, maximize := range []bool{false, true} {
			agents, tasks := hungarianLibAssign(cost, maximize)
			require.True(t, isOneToOne(agents, tasks, min(len(cost), len(cost[0]))), "iteration %d, cost %v", iter, cost)
			require.True(t, sortedAscending(agents), "iteration %d", iter)

			want := bruteForceMin(cost)
			if maximize {
				want = -bruteForceMin(negate(cost))
			}
			require.InDelta(t, want, totalCost(cost, agents, tasks), 1e-9, "iteration %d, maximize %v, cost %v", iter, maximize, cost)
		}
	}
}

func TestIsOneToOne(t *testing.T) {
	assert.True(t, isOneToOne([]int{0, 1}, []int{1, 0}, 2))
	assert.False(t, isOneToOne([]int{0, 1}, []int{1, 1}, 2))
	assert.False(t, isOneToOne([]int{0}, []int{1}, 2))
}

func negate(cost CostMatrix) CostMatrix {
	negated := cost.Clone()
	for i := range negated {
		for j := range negated[i] {
			negated[i][j] = -negated[i][j]
		}
	}
	return negated
}

func sortedAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

func TestAssignerAlgorithms(t *testing.T) {
	cost := CostMatrix{{1, 50, 50}, {50, 1, 50}}
	for _, alg := range []MatchingAlgorithm{MatchingAlgorithmHungarian, MatchingAlgorithmHungarianLib, MatchingAlgorithmGreedy} {
		t.Run(alg.String(), func(t *testing.T) {
			assigner, err := NewAssigner(false, NoThreshold, alg)
			require.NoError(t, err)
			result, err := assigner.Match(cost, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1}, result.MatchedAgents)
			assert.Equal(t, []int{0, 1}, result.MatchedTasks)
			assert.Equal(t, []int{2}, result.Newborn)
			assert.Equal(t, StatusHasNewborn, result.Status)
		})
	}
}

func TestParseMatchingAlgorithm(t *testing.T) {
	for _, alg := range []MatchingAlgorithm{MatchingAlgorithmHungarian, MatchingAlgorithmHungarianLib, MatchingAlgorithmGreedy} {
		parsed, ok := ParseMatchingAlgorithm(alg.String())
		assert.True(t, ok)
		assert.Equal(t, alg, parsed)
	}
	_, ok := ParseMatchingAlgorithm("auction")
	assert.False(t, ok)
	assert.Equal(t, "unknown", MatchingAlgorithm(99).String())
}
