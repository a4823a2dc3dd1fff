package mot

import (
	"cmp"
	"slices"
	"sort"

	"github.com/arthurkushman/go-hungarian"
)

// MatchingAlgorithm is for algorithm type for matching agents to tasks
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmHungarian uses the built-in Kuhn-Munkres solver with pinned tie-break
	MatchingAlgorithmHungarian MatchingAlgorithm = iota
	// MatchingAlgorithmHungarianLib uses github.com/arthurkushman/go-hungarian.
	// The library does not always reach the optimum, so its pairing is checked against the
	// built-in solver and replaced by it when worse. Among equal-cost optima the library's
	// pairing is kept.
	MatchingAlgorithmHungarianLib
	// MatchingAlgorithmGreedy takes cheapest pairs first. Faster but potentially suboptimal.
	MatchingAlgorithmGreedy
)

func (alg MatchingAlgorithm) String() string {
	switch alg {
	case MatchingAlgorithmHungarian:
		return "hungarian"
	case MatchingAlgorithmHungarianLib:
		return "hungarian-lib"
	case MatchingAlgorithmGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseMatchingAlgorithm is the inverse of MatchingAlgorithm.String
func ParseMatchingAlgorithm(s string) (MatchingAlgorithm, bool) {
	for _, alg := range []MatchingAlgorithm{MatchingAlgorithmHungarian, MatchingAlgorithmHungarianLib, MatchingAlgorithmGreedy} {
		if alg.String() == s {
			return alg, true
		}
	}
	return MatchingAlgorithmHungarian, false
}

// solve dispatches validated cost matrix to the selected algorithm.
// Returned positions are index-aligned and sorted by agent position.
func (alg MatchingAlgorithm) solve(cost CostMatrix, maximize bool) ([]int, []int) {
	switch alg {
	case MatchingAlgorithmHungarianLib:
		return hungarianLibAssign(cost, maximize)
	case MatchingAlgorithmGreedy:
		return greedyAssign(cost, maximize)
	default:
		return hungarianAssign(cost, maximize)
	}
}

// hungarianLibAssign runs go-hungarian and keeps its pairing only if it is a complete
// one-to-one assignment with the optimal total cost.
func hungarianLibAssign(cost CostMatrix, maximize bool) ([]int, []int) {
	agents, tasks := libraryAssign(cost, maximize)
	bestAgents, bestTasks := hungarianAssign(cost, maximize)
	if !isOneToOne(agents, tasks, min(len(cost), len(cost[0]))) {
		tracef("hungarian-lib: incomplete pairing (%d pairs), using built-in solver", len(agents))
		return bestAgents, bestTasks
	}
	libTotal := totalCost(cost, agents, tasks)
	bestTotal := totalCost(cost, bestAgents, bestTasks)
	worse := libTotal > bestTotal+costTolerance
	if maximize {
		worse = libTotal < bestTotal-costTolerance
	}
	if worse {
		tracef("hungarian-lib: total %v is not optimal (%v), using built-in solver", libTotal, bestTotal)
		return bestAgents, bestTasks
	}
	return agents, tasks
}

// costTolerance absorbs float rounding when totals of two assignments are compared
const costTolerance = 1e-9

func totalCost(cost CostMatrix, agents, tasks []int) float64 {
	total := 0.0
	for k := range agents {
		total += cost[agents[k]][tasks[k]]
	}
	return total
}

// isOneToOne reports whether pairing has exactly want pairs with no row or column repeated
func isOneToOne(agents, tasks []int, want int) bool {
	if len(agents) != want || len(tasks) != want {
		return false
	}
	rows := make(map[int]struct{}, want)
	cols := make(map[int]struct{}, want)
	for k := range agents {
		rows[agents[k]] = struct{}{}
		cols[tasks[k]] = struct{}{}
	}
	return len(rows) == want && len(cols) == want
}

// libraryAssign pads rectangular matrix to square one and calls hungarian.SolveMax.
// Values are shifted to be non-negative (and flipped for minimization); a constant shift
// does not change which full assignment is optimal. Padding is done with 0.0 values,
// which contribute the same amount to every assignment.
func libraryAssign(cost CostMatrix, maximize bool) ([]int, []int) {
	nRows, nCols := len(cost), len(cost[0])
	lo, hi := cost[0][0], cost[0][0]
	for i := range cost {
		for _, value := range cost[i] {
			lo = minFloat64(lo, value)
			hi = maxFloat64(hi, value)
		}
	}

	paddedSize := max(nRows, nCols)
	paddedMatrix := make([][]float64, paddedSize)
	for i := 0; i < paddedSize; i++ {
		paddedMatrix[i] = make([]float64, paddedSize)
	}
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			if maximize {
				paddedMatrix[i][j] = cost[i][j] - lo
			} else {
				paddedMatrix[i][j] = hi - cost[i][j]
			}
		}
	}

	assignmentsMap := hungarian.SolveMax(paddedMatrix)
	rows := make([]int, 0, len(assignmentsMap))
	for row := range assignmentsMap {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	agents := make([]int, 0, min(nRows, nCols))
	tasks := make([]int, 0, min(nRows, nCols))
	for _, row := range rows {
		rowMap := assignmentsMap[row]
		if len(rowMap) == 0 {
			continue
		}
		// The inner map contains one entry: {column: value}
		col := -1
		for c := range rowMap {
			col = c
			break
		}
		if row < nRows && col >= 0 && col < nCols {
			agents = append(agents, row)
			tasks = append(tasks, col)
		}
	}
	return agents, tasks
}

// greedyAssign repeatedly takes the cheapest (or most valuable when maximizing) free pair.
// Ties are broken by row, then column.
func greedyAssign(cost CostMatrix, maximize bool) ([]int, []int) {
	nRows, nCols := len(cost), len(cost[0])
	candidates := newCandidateHeap(cost, maximize)

	rowTaken := make([]bool, nRows)
	colTaken := make([]bool, nCols)
	matched := make([]candidatePair, 0, min(nRows, nCols))
	for candidates.Len() > 0 && len(matched) < min(nRows, nCols) {
		candidate := candidates.next()
		if rowTaken[candidate.row] || colTaken[candidate.col] {
			continue
		}
		rowTaken[candidate.row] = true
		colTaken[candidate.col] = true
		matched = append(matched, candidate)
	}
	slices.SortFunc(matched, func(a, b candidatePair) int {
		return cmp.Compare(a.row, b.row)
	})

	agents := make([]int, len(matched))
	tasks := make([]int, len(matched))
	for i, pair := range matched {
		agents[i] = pair.row
		tasks[i] = pair.col
	}
	return agents, tasks
}
