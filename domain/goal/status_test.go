package goal

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusCompleted, true}, // cascading auto-completion
		{StatusPending, StatusFailed, true},    // retries exhausted while pending
		{StatusActive, StatusPending, true},    // retry loop
		{StatusActive, StatusInProgress, true},
		{StatusActive, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusBlocked, StatusPending, true},
		{StatusBlocked, StatusActive, true},
		{StatusCompleted, StatusPending, false}, // terminal
		{StatusCompleted, StatusActive, false},
		{StatusFailed, StatusPending, false}, // terminal
		{StatusFailed, StatusActive, false},
		{StatusBlocked, StatusCompleted, false}, // needs explicit reopen first
		{StatusPending, StatusInProgress, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusActive, StatusInProgress, StatusBlocked} {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusInProgress, StatusCompleted, StatusFailed, StatusBlocked} {
		if !s.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", s)
		}
	}
	if Status("paused").IsValid() {
		t.Error(`Status("paused").IsValid() = true, want false`)
	}
}

func TestGoal_TransitionRejectsInvalid(t *testing.T) {
	g := &Goal{ID: "goal_1", Status: StatusCompleted}
	if err := g.transition(StatusActive); err == nil {
		t.Error("transition(completed -> active) error = nil, want ErrInvalidTransition")
	}
	if g.Status != StatusCompleted {
		t.Errorf("status after rejected transition = %q, want %q", g.Status, StatusCompleted)
	}
}
