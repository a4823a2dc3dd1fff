package mot

import (
	"math"

	"github.com/pkg/errors"
)

// NoThreshold disables distance-threshold re-classification
var NoThreshold = math.Inf(1)

// AssignedPair is one matched (agent, task) pair with its cost
type AssignedPair struct {
	Agent int
	Task  int
	Cost  float64
}

// AssignmentResult is the outcome of a single Assigner.Match call.
// MatchedAgents, MatchedTasks and MatchedCosts are index-aligned.
type AssignmentResult struct {
	MatchedAgents []int
	MatchedTasks  []int
	MatchedCosts  []float64
	// Agents without a task (lost)
	Unassigned []int
	// Tasks without an agent (newborn)
	Newborn []int
	Status  AssignmentStatus
}

// NumMatched returns number of matched pairs
func (result AssignmentResult) NumMatched() int {
	return len(result.MatchedAgents)
}

// Pairs zips matched arrays together
func (result AssignmentResult) Pairs() []AssignedPair {
	pairs := make([]AssignedPair, len(result.MatchedAgents))
	for i := range result.MatchedAgents {
		pairs[i] = AssignedPair{
			Agent: result.MatchedAgents[i],
			Task:  result.MatchedTasks[i],
			Cost:  result.MatchedCosts[i],
		}
	}
	return pairs
}

// Assigner wraps optimal bipartite assignment between agents (rows) and tasks (columns),
// classifies size imbalance and optionally splits pairs whose cost exceeds distance threshold.
//
// Assigner keeps the result of the last successful Match only. It is not safe for
// concurrent use.
type Assigner struct {
	// Whether the optimal matching maximizes total cost instead of minimizing it
	maximize bool
	// Maximum acceptable matched cost. NoThreshold (+Inf) disables filtering
	distThres float64
	// Solver
	algorithm MatchingAlgorithm

	matchedAgents []int
	matchedTasks  []int
	matchedCosts  []float64
	unassigned    []int
	newborn       []int
	status        AssignmentStatus
}

// NewDefaultAssigner creates minimizing Assigner without distance threshold using built-in Hungarian solver.
func NewDefaultAssigner() *Assigner {
	return &Assigner{
		maximize:  false,
		distThres: NoThreshold,
		algorithm: MatchingAlgorithmHungarian,
		status:    StatusUninitialized,
	}
}

// NewAssigner creates a new instance of Assigner with specified parameters.
// Pass NoThreshold to disable distance-threshold re-classification.
func NewAssigner(maximize bool, distThres float64, algorithm MatchingAlgorithm) (*Assigner, error) {
	if math.IsNaN(distThres) || distThres < 0 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "got %v", distThres)
	}
	return &Assigner{
		maximize:  maximize,
		distThres: distThres,
		algorithm: algorithm,
		status:    StatusUninitialized,
	}, nil
}

// Maximize returns whether assigner maximizes total cost
func (a *Assigner) Maximize() bool {
	return a.maximize
}

// DistThreshold returns configured distance threshold (NoThreshold if none)
func (a *Assigner) DistThreshold() float64 {
	return a.distThres
}

// Algorithm returns configured solver
func (a *Assigner) Algorithm() MatchingAlgorithm {
	return a.algorithm
}

// Match computes optimal assignment for the given cost matrix.
//
// agentIndices and taskIndices are optional external identifiers for rows and columns;
// nil means positions 0..n-1. When given, their lengths must match matrix dimensions.
//
// Every validation happens before any state changes: a failed call leaves the previously
// stored result untouched. A successful call fully overwrites it.
func (a *Assigner) Match(cost CostMatrix, agentIndices, taskIndices []int) (AssignmentResult, error) {
	if err := cost.Validate(); err != nil {
		return AssignmentResult{}, err
	}
	nAgents, nTasks := len(cost), len(cost[0])
	if agentIndices == nil {
		agentIndices = identityIndices(nAgents)
	} else if len(agentIndices) != nAgents {
		return AssignmentResult{}, errors.Wrapf(ErrSizeMismatch, "agent indices: %d, cost rows: %d", len(agentIndices), nAgents)
	}
	if taskIndices == nil {
		taskIndices = identityIndices(nTasks)
	} else if len(taskIndices) != nTasks {
		return AssignmentResult{}, errors.Wrapf(ErrSizeMismatch, "task indices: %d, cost columns: %d", len(taskIndices), nTasks)
	}

	rows, cols := a.algorithm.solve(cost, a.maximize)

	matchedAgents := make([]int, len(rows))
	matchedTasks := make([]int, len(rows))
	matchedCosts := make([]float64, len(rows))
	rowMatched := make([]bool, nAgents)
	colMatched := make([]bool, nTasks)
	for k := range rows {
		matchedAgents[k] = agentIndices[rows[k]]
		matchedTasks[k] = taskIndices[cols[k]]
		matchedCosts[k] = cost[rows[k]][cols[k]]
		rowMatched[rows[k]] = true
		colMatched[cols[k]] = true
	}

	// Size-imbalance classification, from matrix shape only
	status := statusForShape(nAgents, nTasks)
	unassigned := make([]int, 0)
	newborn := make([]int, 0)
	switch status {
	case StatusHasLost:
		for i, matched := range rowMatched {
			if !matched {
				unassigned = append(unassigned, agentIndices[i])
			}
		}
	case StatusHasNewborn:
		for j, matched := range colMatched {
			if !matched {
				newborn = append(newborn, taskIndices[j])
			}
		}
	}

	// Distance-threshold re-classification
	if !math.IsInf(a.distThres, 1) {
		split, err := PartitionByThreshold(matchedAgents, matchedTasks, matchedCosts, a.distThres)
		if err != nil {
			return AssignmentResult{}, err
		}
		if split < len(matchedAgents) {
			unassigned = append(unassigned, matchedAgents[split:]...)
			newborn = append(newborn, matchedTasks[split:]...)
			matchedAgents = matchedAgents[:split]
			matchedTasks = matchedTasks[:split]
			matchedCosts = matchedCosts[:split]
			status = StatusHasLostAndBorn
		}
	}

	a.matchedAgents = matchedAgents
	a.matchedTasks = matchedTasks
	a.matchedCosts = matchedCosts
	a.unassigned = unassigned
	a.newborn = newborn
	a.status = status
	return a.Result()
}

// ResetState clears stored result. Configuration is kept.
func (a *Assigner) ResetState() {
	a.matchedAgents = nil
	a.matchedTasks = nil
	a.matchedCosts = nil
	a.unassigned = nil
	a.newborn = nil
	a.status = StatusUninitialized
}

func (a *Assigner) checkFitted() error {
	if !a.status.IsFitted() {
		return ErrNotFitted
	}
	if len(a.matchedAgents) != len(a.matchedTasks) || len(a.matchedAgents) != len(a.matchedCosts) {
		return errors.Wrapf(ErrNotFitted, "inconsistent result: agents %d, tasks %d, costs %d", len(a.matchedAgents), len(a.matchedTasks), len(a.matchedCosts))
	}
	return nil
}

// Status returns status of the last successful match (StatusUninitialized if none)
func (a *Assigner) Status() AssignmentStatus {
	return a.status
}

// Result returns copy of the stored result
func (a *Assigner) Result() (AssignmentResult, error) {
	if err := a.checkFitted(); err != nil {
		return AssignmentResult{}, err
	}
	return AssignmentResult{
		MatchedAgents: copyInts(a.matchedAgents),
		MatchedTasks:  copyInts(a.matchedTasks),
		MatchedCosts:  copyFloats(a.matchedCosts),
		Unassigned:    copyInts(a.unassigned),
		Newborn:       copyInts(a.newborn),
		Status:        a.status,
	}, nil
}

// AssignedIndices returns index-aligned matched agents and tasks
func (a *Assigner) AssignedIndices() ([]int, []int, error) {
	if err := a.checkFitted(); err != nil {
		return nil, nil, err
	}
	return copyInts(a.matchedAgents), copyInts(a.matchedTasks), nil
}

// AssignedCosts returns costs of matched pairs, aligned with AssignedIndices
func (a *Assigner) AssignedCosts() ([]float64, error) {
	if err := a.checkFitted(); err != nil {
		return nil, err
	}
	return copyFloats(a.matchedCosts), nil
}

// UnassignedIndices returns agents without a task (lost)
func (a *Assigner) UnassignedIndices() ([]int, error) {
	if err := a.checkFitted(); err != nil {
		return nil, err
	}
	return copyInts(a.unassigned), nil
}

// NewbornIndices returns tasks without an agent (newborn)
func (a *Assigner) NewbornIndices() ([]int, error) {
	if err := a.checkFitted(); err != nil {
		return nil, err
	}
	return copyInts(a.newborn), nil
}
