package mot

import (
	"math"
	"sort"
)

// hungarianAssign implements the Kuhn-Munkres (Hungarian) algorithm with potentials
// (shortest augmenting path formulation) for a rectangular matrix.
// Input must be validated: non-empty, rectangular, finite.
//
// Returns index-aligned agent (row) and task (column) positions sorted by agent position.
// min(rows, cols) pairs are always produced.
//
// Tie-break is pinned: rows are augmented in ascending order and columns are scanned in
// ascending order with strict comparisons, so among equal reduced costs the lowest
// column index wins. When there are more rows than columns the transposed problem is
// solved, i.e. columns are augmented in ascending order instead.
func hungarianAssign(cost CostMatrix, maximize bool) ([]int, []int) {
	work := cost
	if maximize {
		work = cost.Clone()
		for i := range work {
			for j := range work[i] {
				work[i][j] = -work[i][j]
			}
		}
	}
	nRows, nCols := len(work), len(work[0])
	if nRows <= nCols {
		rowAssign := solveRowsToColumns(work)
		agents := make([]int, 0, nRows)
		tasks := make([]int, 0, nRows)
		for row, col := range rowAssign {
			if col < 0 {
				continue
			}
			agents = append(agents, row)
			tasks = append(tasks, col)
		}
		return agents, tasks
	}
	colAssign := solveRowsToColumns(work.Transpose())
	pairs := make([][2]int, 0, nCols)
	for col, row := range colAssign {
		if row < 0 {
			continue
		}
		pairs = append(pairs, [2]int{row, col})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	agents := make([]int, len(pairs))
	tasks := make([]int, len(pairs))
	for i, pair := range pairs {
		agents[i] = pair[0]
		tasks[i] = pair[1]
	}
	return agents, tasks
}

// solveRowsToColumns minimizes total cost for n <= m matrix.
// Returns rowAssign[i] = column assigned to row i.
// Uses 1-indexed arrays internally; column 0 is virtual.
func solveRowsToColumns(c CostMatrix) []int {
	n, m := len(c), len(c[0])
	inf := math.Inf(1)

	u := make([]float64, n+1) // Row potentials
	v := make([]float64, m+1) // Column potentials
	p := make([]int, m+1)     // p[j] = row assigned to column j
	way := make([]int, m+1)   // way[j] = previous column in augmenting path
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= m; j++ {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == 0 {
				// Unreachable for finite costs with n <= m
				break
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// Augment along the path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowAssign := make([]int, n)
	for i := range rowAssign {
		rowAssign[i] = -1
	}
	for j := 1; j <= m; j++ {
		if p[j] > 0 {
			rowAssign[p[j]-1] = j - 1
		}
	}
	return rowAssign
}
