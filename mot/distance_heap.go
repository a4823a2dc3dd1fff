package mot

import "container/heap"

// candidatePair is a single agent x task cell of cost matrix
type candidatePair struct {
	row  int
	col  int
	cost float64
}

// candidateHeap implements heap.Interface. The cheapest pair (most valuable when maximizing)
// is on top; equal costs are ordered by row, then column.
type candidateHeap struct {
	items    []candidatePair
	maximize bool
}

func newCandidateHeap(cost CostMatrix, maximize bool) *candidateHeap {
	h := &candidateHeap{
		items:    make([]candidatePair, 0, len(cost)*len(cost[0])),
		maximize: maximize,
	}
	for i := range cost {
		for j := range cost[i] {
			h.items = append(h.items, candidatePair{row: i, col: j, cost: cost[i][j]})
		}
	}
	heap.Init(h)
	return h
}

func (h *candidateHeap) Len() int { return len(h.items) }

func (h *candidateHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.cost != b.cost {
		if h.maximize {
			return a.cost > b.cost
		}
		return a.cost < b.cost
	}
	if a.row != b.row {
		return a.row < b.row
	}
	return a.col < b.col
}

func (h *candidateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *candidateHeap) Push(x any) {
	h.items = append(h.items, x.(candidatePair))
}

func (h *candidateHeap) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}

// next removes and returns the best remaining pair
func (h *candidateHeap) next() candidatePair {
	return heap.Pop(h).(candidatePair)
}
