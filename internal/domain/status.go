package domain

import "fmt"

// Status is the lifecycle state of a deposit, withdrawal or ledger
// transaction. PENDING is the only non-terminal state an admin decision
// acts on; once an entity leaves PENDING it never re-enters it.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions enumerates every legal status edge. Anything not listed
// here is rejected by Transition.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusCancelled},
}

var ErrIllegalTransition = fmt.Errorf("illegal status transition")

// CanTransition reports whether moving from s to target is a legal edge.
func (s Status) CanTransition(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing edges.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Transition validates the edge from s to target.
func (s Status) Transition(target Status) error {
	if !s.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}
	return nil
}
