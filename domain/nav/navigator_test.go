package nav

import (
	"strings"
	"testing"
)

// fakeRegistry serves a fixed landmark table.
type fakeRegistry struct {
	maps map[int]map[string]Landmark
}

func (r *fakeRegistry) Lookup(mapID int, key string) (Landmark, bool) {
	landmarks, ok := r.maps[mapID]
	if !ok {
		return Landmark{}, false
	}
	l, ok := landmarks[key]
	return l, ok
}

func (r *fakeRegistry) Keys(mapID int) []string {
	landmarks, ok := r.maps[mapID]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(landmarks))
	for k := range landmarks {
		keys = append(keys, k)
	}
	return keys
}

func (r *fakeRegistry) MapName(mapID int) (string, bool) {
	_, ok := r.maps[mapID]
	if !ok {
		return "", false
	}
	return "Test Map", true
}

func newTestNavigator(t *testing.T, x, y int) *Navigator {
	t.Helper()
	registry := &fakeRegistry{maps: map[int]map[string]Landmark{
		1: {"gym": {X: x, Y: y, Label: "Pewter Gym"}},
	}}
	n := NewNavigator(registry)
	if !n.SetTarget(1, "gym") {
		t.Fatal("SetTarget(1, gym) = false, want true")
	}
	return n
}

func TestNavigator_SetTarget_UnknownMapOrKey(t *testing.T) {
	registry := &fakeRegistry{maps: map[int]map[string]Landmark{
		1: {"gym": {X: 5, Y: 5}},
	}}
	n := NewNavigator(registry)

	if n.SetTarget(99, "gym") {
		t.Error("SetTarget(unknown map) = true, want false")
	}
	if n.SetTarget(1, "missing") {
		t.Error("SetTarget(unknown key) = true, want false")
	}
	if n.Active() {
		t.Error("Active() = true after failed SetTarget, want false")
	}
}

func TestNavigator_Inactive(t *testing.T) {
	n := NewNavigator(&fakeRegistry{})
	if dir, ok := n.NextDirection(0, 0, 1); ok {
		t.Errorf("NextDirection() inactive = %q, want none", dir)
	}
}

func TestNavigator_GreedyAxisPriority(t *testing.T) {
	tests := []struct {
		name             string
		x, y             int
		targetX, targetY int
		want             Direction
	}{
		{"larger x gap moves right", 0, 0, 10, 3, DirRight},
		{"larger x gap moves left", 10, 0, 0, 3, DirLeft},
		{"larger y gap moves down", 0, 0, 3, 10, DirDown},
		{"larger y gap moves up", 0, 10, 3, 0, DirUp},
		{"equal nonzero deltas prefer y", 0, 0, 5, 5, DirDown},
		{"zero y delta resolves to x", 0, 5, 6, 5, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNavigator(t, tt.targetX, tt.targetY)
			dir, ok := n.NextDirection(tt.x, tt.y, 1)
			if !ok {
				t.Fatal("NextDirection() = none, want a direction")
			}
			if dir != tt.want {
				t.Errorf("NextDirection() = %q, want %q", dir, tt.want)
			}
		})
	}
}

func TestNavigator_Arrival(t *testing.T) {
	n := newTestNavigator(t, 10, 10)

	// Chebyshev distance 1 counts as arrived.
	if dir, ok := n.NextDirection(9, 10, 1); ok {
		t.Errorf("NextDirection() adjacent to target = %q, want none", dir)
	}
	if n.Active() {
		t.Error("Active() = true after arrival, want false")
	}
	if n.StuckEvents() != 0 {
		t.Errorf("StuckEvents() after arrival = %d, want 0", n.StuckEvents())
	}
}

func TestNavigator_MapChangeCancels(t *testing.T) {
	n := newTestNavigator(t, 10, 10)

	if dir, ok := n.NextDirection(0, 0, 2); ok {
		t.Errorf("NextDirection() on wrong map = %q, want none", dir)
	}
	if n.Active() {
		t.Error("Active() = true after map change, want false")
	}
	// Once cancelled, subsequent calls stay none even on the original map.
	if dir, ok := n.NextDirection(0, 0, 1); ok {
		t.Errorf("NextDirection() after cancel = %q, want none", dir)
	}
}

func TestNavigator_StuckStartsDetour(t *testing.T) {
	n := newTestNavigator(t, 10, 5)

	// Three ticks without movement trigger a perpendicular detour.
	for i := 0; i < 3; i++ {
		dir, ok := n.NextDirection(0, 5, 1)
		if !ok || dir != DirRight {
			t.Fatalf("tick %d: NextDirection() = %q (%v), want RIGHT", i, dir, ok)
		}
	}
	dir, ok := n.NextDirection(0, 5, 1)
	if !ok || dir != DirUp {
		t.Fatalf("detour direction = %q (%v), want UP (first perpendicular option)", dir, ok)
	}
	if n.StuckEvents() != 1 {
		t.Errorf("StuckEvents() = %d, want 1", n.StuckEvents())
	}
}

func TestNavigator_BlockedDetourAlternates(t *testing.T) {
	n := newTestNavigator(t, 10, 5)

	for i := 0; i < 3; i++ {
		n.NextDirection(0, 5, 1)
	}
	if dir, _ := n.NextDirection(0, 5, 1); dir != DirUp {
		t.Fatalf("first detour = %q, want UP", dir)
	}
	// Still not moving: the detour itself is blocked, so the other
	// perpendicular option is tried immediately.
	dir, ok := n.NextDirection(0, 5, 1)
	if !ok || dir != DirDown {
		t.Fatalf("second detour = %q (%v), want DOWN", dir, ok)
	}
	if n.StuckEvents() != 2 {
		t.Errorf("StuckEvents() = %d, want 2", n.StuckEvents())
	}
}

func TestNavigator_DetourAxisFollowsSmallerDelta(t *testing.T) {
	// Moving mostly along Y detours along X.
	n := newTestNavigator(t, 5, 20)
	for i := 0; i < 3; i++ {
		n.NextDirection(5, 0, 1)
	}
	dir, ok := n.NextDirection(5, 0, 1)
	if !ok || dir != DirLeft {
		t.Fatalf("detour = %q (%v), want LEFT", dir, ok)
	}
}

func TestNavigator_DetourRunsItsCourse(t *testing.T) {
	n := newTestNavigator(t, 10, 5)

	for i := 0; i < 3; i++ {
		n.NextDirection(0, 5, 1)
	}
	// First detour: length 3, direction UP.
	if dir, _ := n.NextDirection(0, 5, 1); dir != DirUp {
		t.Fatalf("detour start = %q, want UP", dir)
	}
	// Moving during the detour keeps it going until its ticks run out.
	if dir, _ := n.NextDirection(0, 4, 1); dir != DirUp {
		t.Error("detour tick 2 should continue UP")
	}
	if dir, _ := n.NextDirection(0, 3, 1); dir != DirUp {
		t.Error("detour tick 3 should continue UP")
	}
	// Ticks exhausted: fall through to direct movement.
	dir, ok := n.NextDirection(0, 2, 1)
	if !ok || dir != DirRight {
		t.Errorf("after detour = %q (%v), want RIGHT (resume greedy)", dir, ok)
	}
}

func TestDetourLength_Sequence(t *testing.T) {
	want := []int{3, 5, 7, 9, 11, 12, 12}
	for stuck, length := range want {
		if got := detourLength(stuck); got != length {
			t.Errorf("detourLength(%d) = %d, want %d", stuck, got, length)
		}
	}
}

func TestNavigator_GiveUpThreshold(t *testing.T) {
	n := newTestNavigator(t, 10, 5)
	n.totalStuck = giveUpThreshold

	// Next escalation cancels navigation instead of detouring again.
	for i := 0; i < 3; i++ {
		n.NextDirection(0, 5, 1)
	}
	if dir, ok := n.NextDirection(0, 5, 1); ok {
		t.Errorf("NextDirection() past give-up threshold = %q, want none", dir)
	}
	if n.Active() {
		t.Error("Active() = true after give-up, want false")
	}
}

func TestNavigator_FullyBlockedEventuallyGivesUp(t *testing.T) {
	n := newTestNavigator(t, 10, 5)

	gaveUp := false
	for i := 0; i < 200; i++ {
		if _, ok := n.NextDirection(0, 5, 1); !ok {
			gaveUp = true
			break
		}
	}
	if !gaveUp {
		t.Fatal("navigator never gave up against a fully blocked player")
	}
	if n.Active() {
		t.Error("Active() = true after give-up, want false")
	}
}

func TestNavigator_DistanceRemaining(t *testing.T) {
	n := newTestNavigator(t, 10, 5)
	if got := n.DistanceRemaining(0, 0); got != 15 {
		t.Errorf("DistanceRemaining(0,0) = %d, want 15", got)
	}

	idle := NewNavigator(&fakeRegistry{})
	if got := idle.DistanceRemaining(3, 4); got != 0 {
		t.Errorf("DistanceRemaining() with no target = %d, want 0", got)
	}
}

func TestNavigator_TargetsText(t *testing.T) {
	registry := &fakeRegistry{maps: map[int]map[string]Landmark{
		1: {"gym": {X: 5, Y: 5, Label: "Pewter Gym"}},
	}}
	n := NewNavigator(registry)

	text := n.TargetsText(1)
	if !strings.Contains(text, "GOTO_GYM = walk to Pewter Gym") {
		t.Errorf("TargetsText() = %q, want GOTO_GYM line", text)
	}
	if got := n.TargetsText(99); got != "" {
		t.Errorf("TargetsText(unknown map) = %q, want empty", got)
	}
}
