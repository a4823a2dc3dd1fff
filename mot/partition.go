package mot

import "github.com/pkg/errors"

// PartitionByThreshold reorders three parallel slices in place so that every triple with
// cost <= threshold comes first, in the order encountered, and returns the split point.
//
// Single forward scan with a partition pointer: a kept triple is swapped with the one at
// the pointer and the pointer advances. After return:
//
//	costs[:split] <= threshold, costs[split:] > threshold
//
// A NaN threshold keeps nothing; +Inf keeps everything.
func PartitionByThreshold(agents, tasks []int, costs []float64, threshold float64) (int, error) {
	if len(agents) != len(tasks) || len(agents) != len(costs) {
		return 0, errors.Wrapf(ErrSizeMismatch, "agents: %d, tasks: %d, costs: %d", len(agents), len(tasks), len(costs))
	}
	split := 0
	for i := range costs {
		if costs[i] <= threshold {
			agents[split], agents[i] = agents[i], agents[split]
			tasks[split], tasks[i] = tasks[i], tasks[split]
			costs[split], costs[i] = costs[i], costs[split]
			split++
		}
	}
	return split, nil
}
