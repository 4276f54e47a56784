package goal

// Status is the lifecycle state of a goal.
type Status string

const (
	StatusPending    Status = "pending"     // Eligible for selection once prerequisites complete
	StatusActive     Status = "active"      // Currently selected for pursuit
	StatusInProgress Status = "in_progress" // Actively worked, progress noted
	StatusCompleted  Status = "completed"   // Terminal success
	StatusFailed     Status = "failed"      // Terminal failure (retries exhausted)
	StatusBlocked    Status = "blocked"     // Needs external intervention
)

// IsTerminal returns true for states a goal never leaves.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// IsWorkable returns true if the goal is being pursued right now.
func (s Status) IsWorkable() bool {
	return s == StatusActive || s == StatusInProgress
}

// IsValid returns true if the status is a recognized variant.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInProgress, StatusCompleted, StatusFailed, StatusBlocked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// transitions is the closed set of legal status changes. Terminal states
// have no outgoing edges. Pending goals may complete directly through the
// cascading auto-completion of their children.
var transitions = map[Status][]Status{
	StatusPending:    {StatusActive, StatusCompleted, StatusFailed, StatusBlocked},
	StatusActive:     {StatusInProgress, StatusCompleted, StatusFailed, StatusBlocked, StatusPending},
	StatusInProgress: {StatusCompleted, StatusFailed, StatusBlocked, StatusPending},
	StatusBlocked:    {StatusPending, StatusActive},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
