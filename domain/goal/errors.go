package goal

import "errors"

// Domain errors for goal tree operations.
var (
	// ErrGoalNotFound is returned when a goal id does not exist in the tree.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTransition is returned when a status change is rejected.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDocumentNotFound is returned by stores when no document has been
	// persisted yet. Callers treat it as an empty tree.
	ErrDocumentNotFound = errors.New("goal document not found")
)
