package mot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// CostFunc computes cost between an agent's box (existing track) and a task's box (detection)
type CostFunc func(agent, task Rectangle) float64

// CenterDistance is Euclidean distance between box centers. Use with minimizing assigner.
func CenterDistance(agent, task Rectangle) float64 {
	return euclideanDistance(agent.Center(), task.Center())
}

// IoUDistance is 1 - IoU. Use with minimizing assigner.
func IoUDistance(agent, task Rectangle) float64 {
	return 1.0 - IoU(agent, task)
}

// IoUSimilarity is plain IoU. Use with maximizing assigner.
func IoUSimilarity(agent, task Rectangle) float64 {
	return IoU(agent, task)
}

// BuildCostMatrix evaluates fn for every agent x task pair.
// Result is empty (and will be rejected by Assigner.Match) if either side is empty.
func BuildCostMatrix(agents, tasks []Rectangle, fn CostFunc) CostMatrix {
	cost := NewCostMatrix(len(agents), len(tasks))
	for i := range agents {
		for j := range tasks {
			cost[i][j] = fn(agents[i], tasks[j])
		}
	}
	return cost
}

// EuclideanCostMatrix computes batch Euclidean distances between agent and task vectors
// using only their first dims coordinates (e.g. 3 for x, y, z of a 3D box).
func EuclideanCostMatrix(agents, tasks [][]float64, dims int) (CostMatrix, error) {
	if dims <= 0 {
		return nil, errors.Errorf("dims must be positive, got %d", dims)
	}
	for i := range agents {
		if len(agents[i]) < dims {
			return nil, errors.Wrapf(ErrSizeMismatch, "agent %d has %d coordinates, need %d", i, len(agents[i]), dims)
		}
	}
	for j := range tasks {
		if len(tasks[j]) < dims {
			return nil, errors.Wrapf(ErrSizeMismatch, "task %d has %d coordinates, need %d", j, len(tasks[j]), dims)
		}
	}
	cost := NewCostMatrix(len(agents), len(tasks))
	for i := range agents {
		for j := range tasks {
			cost[i][j] = floats.Distance(agents[i][:dims], tasks[j][:dims], 2)
		}
	}
	return cost, nil
}
