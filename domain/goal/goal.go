// Package goal provides the hierarchical progression tree: goal records,
// the status state machine, the selector, and the persistence interface.
package goal

import (
	"fmt"
	"time"
)

// Defaults applied when a caller leaves a field unset.
const (
	DefaultPriority    = 5
	DefaultMaxAttempts = 10
)

// Goal is a single node in the progression tree. The tree is stored as an
// arena of records indexed by id: parent and children are ids, never live
// references, so serialization stays trivial and cycles cannot form through
// aliasing.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Status        Status    `json:"status"`
	Priority      int       `json:"priority"` // lower = more urgent
	ParentID      string    `json:"parent_id,omitempty"`
	ChildrenIDs   []string  `json:"children_ids"` // insertion order = intended sequence
	Prerequisites []string  `json:"prerequisites"`
	Notes         []string  `json:"notes"`
	Attempts      int       `json:"attempts"`
	MaxAttempts   int       `json:"max_attempts"`
	CreatedAt     time.Time `json:"created_at"`
	CompletedAt   time.Time `json:"completed_at,omitempty"`
}

// transition moves the goal to target, rejecting illegal changes.
func (g *Goal) transition(target Status) error {
	if g.Status == target {
		return nil
	}
	if !g.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s (goal %s)", ErrInvalidTransition, g.Status, target, g.ID)
	}
	g.Status = target
	return nil
}

// AddNote appends to the goal's append-only note log.
func (g *Goal) AddNote(note string) {
	if note != "" {
		g.Notes = append(g.Notes, note)
	}
}

// RetriesExhausted reports whether the attempt counter has reached its bound.
func (g *Goal) RetriesExhausted() bool {
	return g.Attempts >= g.MaxAttempts
}

// Step describes one sub-goal in an AddSubgoals call. A step flagged
// Sequential gains the previous step's id as a prerequisite, producing a
// linear dependency chain under one parent.
type Step struct {
	Name          string
	Description   string
	Priority      int // 0 means DefaultPriority
	Prerequisites []string
	Sequential    bool
}
