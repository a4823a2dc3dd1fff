package mot

import (
	"math"
)

// MatchTimestamps pairs two timestamp series one-to-one minimizing total absolute
// difference. Pairs farther apart than maxGap are dropped; pass NoThreshold to keep all.
//
// Returned slices are index-aligned positions into a and b, ordered by position in a.
func MatchTimestamps(a, b []float64, maxGap float64) ([]int, []int, error) {
	assigner, err := NewAssigner(false, maxGap, MatchingAlgorithmHungarian)
	if err != nil {
		return nil, nil, err
	}
	cost := NewCostMatrix(len(a), len(b))
	for i := range a {
		for j := range b {
			cost[i][j] = math.Abs(a[i] - b[j])
		}
	}
	result, err := assigner.Match(cost, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return result.MatchedAgents, result.MatchedTasks, nil
}
