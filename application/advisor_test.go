package application

import (
	"context"
	"strings"
	"testing"

	"github.com/firered-ai/tactician/domain/battle"
	"github.com/firered-ai/tactician/domain/goal"
	"github.com/firered-ai/tactician/domain/nav"
	"github.com/firered-ai/tactician/domain/world"
)

type fakeRegistry struct {
	landmarks map[int]map[string]nav.Landmark
}

func (f *fakeRegistry) Lookup(mapID int, key string) (nav.Landmark, bool) {
	lm, ok := f.landmarks[mapID][key]
	return lm, ok
}

func (f *fakeRegistry) Keys(mapID int) []string {
	var keys []string
	for key := range f.landmarks[mapID] {
		keys = append(keys, key)
	}
	return keys
}

func (f *fakeRegistry) MapName(mapID int) (string, bool) {
	_, ok := f.landmarks[mapID]
	return "Test Town", ok
}

func newTestAdvisor(t *testing.T, reviewEvery, saveEvery int) *Advisor {
	t.Helper()
	registry := &fakeRegistry{landmarks: map[int]map[string]nav.Landmark{
		3: {"center": {X: 20, Y: 5, Label: "Pokemon Center"}},
	}}
	a, err := NewAdvisor(AdvisorConfig{
		Planner:           goal.NewPlanner(nil),
		Navigator:         nav.NewNavigator(registry),
		Battle:            battle.NewTracker(battle.DefaultChart()),
		ReviewEvery:       reviewEvery,
		SaveReminderEvery: saveEvery,
	})
	if err != nil {
		t.Fatalf("NewAdvisor() error = %v", err)
	}
	return a
}

func overworldAt(x, y int) world.Snapshot {
	return world.Snapshot{
		PlayerX: x, PlayerY: y, MapID: 3, Money: 3000,
		Party: []world.PartyMember{
			{SpeciesName: "Charmander", Level: 12, HPCurrent: 20, HPMax: 20, Moves: []string{"Ember"}},
		},
	}
}

func TestNewAdvisor_RequiredCollaborators(t *testing.T) {
	registry := &fakeRegistry{}
	tests := []struct {
		name   string
		config AdvisorConfig
	}{
		{"missing planner", AdvisorConfig{Navigator: nav.NewNavigator(registry), Battle: battle.NewTracker(nil)}},
		{"missing navigator", AdvisorConfig{Planner: goal.NewPlanner(nil), Battle: battle.NewTracker(nil)}},
		{"missing battle tracker", AdvisorConfig{Planner: goal.NewPlanner(nil), Navigator: nav.NewNavigator(registry)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAdvisor(tt.config); err == nil {
				t.Error("NewAdvisor() error = nil, want required-collaborator error")
			}
		})
	}
}

func TestAdvisor_TickIncludesGoalContext(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()
	if _, err := a.planner.AddGoal(ctx, "Defeat Brock", "Pewter gym", 1, "", nil); err != nil {
		t.Fatal(err)
	}

	advice, err := a.Tick(ctx, overworldAt(5, 5))
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if !strings.Contains(advice.GoalContext, "Defeat Brock") {
		t.Errorf("GoalContext = %q, missing goal name", advice.GoalContext)
	}
	if advice.Tick != 1 {
		t.Errorf("Tick = %d, want 1", advice.Tick)
	}
}

func TestAdvisor_TickInBattle(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	s := overworldAt(5, 5)
	s.InBattle = world.BattleWild
	advice, err := a.Tick(ctx, s)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if !strings.Contains(advice.BattleContext, "IN BATTLE (WILD)") {
		t.Errorf("BattleContext = %q, missing battle header", advice.BattleContext)
	}
	if advice.HasDirection {
		t.Error("navigation hint emitted during battle")
	}
	if advice.TargetsText != "" {
		t.Error("targets listed during battle")
	}
}

func TestAdvisor_BattleWinRecorded(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	s := overworldAt(5, 5)
	s.InBattle = world.BattleTrainer
	if _, err := a.Tick(ctx, s); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Tick(ctx, overworldAt(5, 5)); err != nil {
		t.Fatal(err)
	}

	if got := a.Stats().BattlesWon; got != 1 {
		t.Errorf("BattlesWon = %d, want 1", got)
	}
}

func TestAdvisor_NavigationHint(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	if !a.SetDestination(3, "center") {
		t.Fatal("SetDestination() = false for known landmark")
	}

	advice, err := a.Tick(ctx, overworldAt(5, 5))
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if !advice.HasDirection {
		t.Fatal("HasDirection = false with active target")
	}
	// Target is at (20,5): x-axis dominates.
	if advice.Direction != nav.DirRight {
		t.Errorf("Direction = %q, want RIGHT", advice.Direction)
	}
	if !strings.Contains(advice.TargetsText, "GOTO_CENTER") {
		t.Errorf("TargetsText = %q, missing GOTO_CENTER", advice.TargetsText)
	}
}

func TestAdvisor_SetDestinationUnknown(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	if a.SetDestination(3, "nowhere") {
		t.Error("SetDestination() = true for unknown landmark")
	}
	if a.SetDestination(99, "center") {
		t.Error("SetDestination() = true for unknown map")
	}
}

func TestAdvisor_CriticalHPWarning(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	s := overworldAt(5, 5)
	s.Party[0].HPCurrent = 3 // 15%
	advice, err := a.Tick(ctx, s)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	text := advice.Text()
	if !strings.Contains(text, "CRITICAL HP WARNING") {
		t.Errorf("advice %q missing critical HP warning", text)
	}
	if !strings.Contains(text, "EMERGENCY") {
		t.Errorf("advice %q missing all-low emergency", text)
	}
}

func TestAdvisor_FaintedLeadWarning(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	s := overworldAt(5, 5)
	s.Party[0].HPCurrent = 0
	advice, err := a.Tick(ctx, s)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if !strings.Contains(advice.Text(), "has FAINTED") {
		t.Errorf("advice %q missing fainted warning", advice.Text())
	}
}

func TestAdvisor_StuckHint(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	a.RecordAction("UP", "pressed UP", "overworld")
	for i := 0; i < 4; i++ {
		advice, err := a.Tick(ctx, overworldAt(5, 5))
		if err != nil {
			t.Fatal(err)
		}
		text := advice.Text()
		if i < 3 && strings.Contains(text, "STUCK!") {
			t.Fatalf("tick %d: premature stuck hint in %q", i, text)
		}
		if i == 3 && !strings.Contains(text, "You pressed UP but did NOT move") {
			t.Errorf("tick %d: missing stuck hint in %q", i, text)
		}
	}
}

func TestAdvisor_StuckHintResetsOnMovement(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Tick(ctx, overworldAt(5, 5)); err != nil {
			t.Fatal(err)
		}
	}
	advice, err := a.Tick(ctx, overworldAt(6, 5))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(advice.Text(), "STUCK!") {
		t.Errorf("stuck hint survived movement: %q", advice.Text())
	}
}

func TestAdvisor_RepeatedActionHint(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		a.RecordAction("A", "pressed A", "overworld")
	}
	advice, err := a.Tick(ctx, overworldAt(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(advice.Text(), "STOP pressing A!") {
		t.Errorf("advice %q missing repeat warning", advice.Text())
	}
}

func TestAdvisor_PeriodicExtras(t *testing.T) {
	a := newTestAdvisor(t, 3, 2)
	ctx := context.Background()
	if _, err := a.planner.AddGoal(ctx, "Defeat Brock", "", 1, "", nil); err != nil {
		t.Fatal(err)
	}

	var saves, reviews int
	for i := 0; i < 6; i++ {
		advice, err := a.Tick(ctx, overworldAt(i, 5))
		if err != nil {
			t.Fatal(err)
		}
		if advice.SaveReminder {
			saves++
		}
		if advice.GoalTree != "" {
			reviews++
			if !strings.Contains(advice.GoalTree, "Defeat Brock") {
				t.Errorf("GoalTree = %q, missing goal", advice.GoalTree)
			}
		}
	}
	if saves != 3 {
		t.Errorf("save reminders = %d over 6 ticks with interval 2, want 3", saves)
	}
	if reviews != 2 {
		t.Errorf("tree reviews = %d over 6 ticks with interval 3, want 2", reviews)
	}
}

func TestAdvisor_SessionIDStable(t *testing.T) {
	a := newTestAdvisor(t, 0, 0)
	if a.SessionID() == "" {
		t.Fatal("SessionID() is empty")
	}
	if a.SessionID() != a.SessionID() {
		t.Error("SessionID() changed between calls")
	}
}
