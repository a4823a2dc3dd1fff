package mot

// AssignmentStatus classifies the outcome of a single Assigner.Match call
type AssignmentStatus uint8

const (
	// StatusUninitialized means no successful match since construction or ResetState
	StatusUninitialized AssignmentStatus = iota
	// StatusMatched means every agent and every task has been paired
	StatusMatched
	// StatusHasLost means there were more agents than tasks
	StatusHasLost
	// StatusHasNewborn means there were more tasks than agents
	StatusHasNewborn
	// StatusHasLostAndBorn means at least one optimal pair was split by the distance threshold
	StatusHasLostAndBorn
)

func (s AssignmentStatus) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusMatched:
		return "matched"
	case StatusHasLost:
		return "has_lost"
	case StatusHasNewborn:
		return "has_newborn"
	case StatusHasLostAndBorn:
		return "has_lost_and_born"
	default:
		return "unknown"
	}
}

// IsFitted reports whether status describes a completed match
func (s AssignmentStatus) IsFitted() bool {
	switch s {
	case StatusMatched, StatusHasLost, StatusHasNewborn, StatusHasLostAndBorn:
		return true
	default:
		return false
	}
}

// statusForShape is the size-imbalance classification, computed from matrix shape only
func statusForShape(nAgents, nTasks int) AssignmentStatus {
	switch {
	case nAgents == nTasks:
		return StatusMatched
	case nAgents > nTasks:
		return StatusHasLost
	default:
		return StatusHasNewborn
	}
}
