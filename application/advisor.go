// Package application provides the per-tick advisory orchestration: it
// feeds world snapshots to the battle tracker, stats tracker, and
// navigator, queries the goal selector, and assembles the advisory block
// consumed by the external decision-maker.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/firered-ai/tactician/domain/battle"
	"github.com/firered-ai/tactician/domain/goal"
	"github.com/firered-ai/tactician/domain/nav"
	"github.com/firered-ai/tactician/domain/stats"
	"github.com/firered-ai/tactician/domain/world"
	"github.com/firered-ai/tactician/infrastructure/logging"
)

// criticalHPPercent is the lead-HP threshold below which the advice tells
// the decision-maker to stop fighting.
const criticalHPPercent = 25

// recentActionWindow bounds the action log used for repeat detection.
const recentActionWindow = 10

// Advisor runs the advisory pipeline once per tick. It is single-threaded:
// the caller delivers snapshots in order, exactly once per tick.
type Advisor struct {
	planner   *goal.Planner
	navigator *nav.Navigator
	battle    *battle.Tracker
	stats     *stats.Tracker

	sessionID         string
	reviewEvery       int
	saveReminderEvery int

	tick          int
	prevX, prevY  int
	stuckTicks    int
	recentActions []string
}

// AdvisorConfig contains the advisor's collaborators and tuning.
type AdvisorConfig struct {
	Planner   *goal.Planner
	Navigator *nav.Navigator
	Battle    *battle.Tracker
	Stats     *stats.Tracker

	// ReviewEvery renders the goal tree into the advice every N ticks.
	ReviewEvery int
	// SaveReminderEvery emits a save reminder every N ticks.
	SaveReminderEvery int
}

// NewAdvisor creates an advisor from the given configuration.
func NewAdvisor(config AdvisorConfig) (*Advisor, error) {
	if config.Planner == nil {
		return nil, errors.New("planner is required")
	}
	if config.Navigator == nil {
		return nil, errors.New("navigator is required")
	}
	if config.Battle == nil {
		return nil, errors.New("battle tracker is required")
	}
	if config.Stats == nil {
		config.Stats = stats.NewTracker()
	}

	return &Advisor{
		planner:           config.Planner,
		navigator:         config.Navigator,
		battle:            config.Battle,
		stats:             config.Stats,
		sessionID:         uuid.NewString(),
		reviewEvery:       config.ReviewEvery,
		saveReminderEvery: config.SaveReminderEvery,
		prevX:             -1,
		prevY:             -1,
	}, nil
}

// SessionID returns the identifier for this advisory session.
func (a *Advisor) SessionID() string {
	return a.sessionID
}

// Advice is the output of one advisory tick.
type Advice struct {
	Tick int

	// GoalContext describes the goal the decision-maker should pursue.
	GoalContext string
	// BattleContext is present while a battle is running.
	BattleContext string
	// Warnings are critical-state callouts (fainted lead, low HP,
	// stuck movement, repeated actions).
	Warnings []string
	// Direction is the navigator's movement hint, valid when
	// HasDirection is set.
	Direction    nav.Direction
	HasDirection bool
	// TargetsText lists the landmarks reachable on the current map.
	TargetsText string
	// GoalTree is the periodic full-tree review, usually empty.
	GoalTree string
	// SaveReminder tells the decision-maker to save the game.
	SaveReminder bool
}

// Text renders the advice as one text block for the decision-maker.
func (ad Advice) Text() string {
	var parts []string
	if ad.GoalContext != "" {
		parts = append(parts, ad.GoalContext)
	}
	if ad.BattleContext != "" {
		parts = append(parts, ad.BattleContext)
	}
	parts = append(parts, ad.Warnings...)
	if ad.HasDirection {
		parts = append(parts, fmt.Sprintf("NAVIGATION: press %s to continue toward the target.", ad.Direction))
	}
	if ad.TargetsText != "" {
		parts = append(parts, ad.TargetsText)
	}
	if ad.SaveReminder {
		parts = append(parts, "REMINDER: Save the game! Press START > SAVE > A > A")
	}
	if ad.GoalTree != "" {
		parts = append(parts, "Goal Tree:\n"+ad.GoalTree)
	}
	return strings.Join(parts, "\n")
}

// Tick runs one advisory iteration over the snapshot.
func (a *Advisor) Tick(ctx context.Context, s world.Snapshot) (Advice, error) {
	a.tick++
	advice := Advice{Tick: a.tick}

	a.updateStats(s)
	a.updateBattle(s)

	goalContext, err := a.planner.ActiveGoalContext(ctx)
	if err != nil {
		return Advice{}, fmt.Errorf("failed to resolve active goal: %w", err)
	}
	advice.GoalContext = goalContext

	inBattle := a.battle.InBattle()
	if inBattle {
		advice.BattleContext = a.battle.Context(s)
	}

	advice.Warnings = a.healthWarnings(s, inBattle)

	if !inBattle && a.navigator.Active() {
		if dir, ok := a.navigator.NextDirection(s.PlayerX, s.PlayerY, s.MapID); ok {
			advice.Direction = dir
			advice.HasDirection = true
		}
	}
	if !inBattle {
		advice.TargetsText = a.navigator.TargetsText(s.MapID)
		if hint := a.stuckHint(s); hint != "" {
			advice.Warnings = append(advice.Warnings, hint)
		}
		if hint := a.repeatHint(); hint != "" {
			advice.Warnings = append(advice.Warnings, hint)
		}
	}

	if a.saveReminderEvery > 0 && a.tick%a.saveReminderEvery == 0 {
		advice.SaveReminder = true
	}
	if a.reviewEvery > 0 && a.tick%a.reviewEvery == 0 {
		advice.GoalTree = a.planner.RenderTree()
	}

	return advice, nil
}

// updateStats feeds the snapshot to the stats tracker and logs milestones.
func (a *Advisor) updateStats(s world.Snapshot) {
	for _, ev := range a.stats.Update(s) {
		logging.Info().
			Add(logging.SessionID(a.sessionID)).
			Add(logging.Tick(a.tick)).
			Add(logging.Str("milestone", string(ev.Type))).
			Add(logging.Count(ev.Count)).
			Msg("progress milestone")
	}
}

// updateBattle feeds the snapshot to the battle tracker and logs
// transitions, crediting wins to the stats tracker.
func (a *Advisor) updateBattle(s world.Snapshot) {
	ev := a.battle.Update(s)
	switch ev.Type {
	case battle.EventBattleStart:
		logging.Info().
			Add(logging.SessionID(a.sessionID)).
			Add(logging.Tick(a.tick)).
			Add(logging.BattleKind(string(ev.Kind))).
			Msg("battle started")
	case battle.EventBattleEnd:
		if ev.Outcome == battle.OutcomeWon {
			a.stats.RecordWin()
		}
		logging.Info().
			Add(logging.SessionID(a.sessionID)).
			Add(logging.Tick(a.tick)).
			Add(logging.Outcome(string(ev.Outcome))).
			Msg("battle ended")
	}
}

// healthWarnings builds the critical-HP callouts for the lead and party.
func (a *Advisor) healthWarnings(s world.Snapshot, inBattle bool) []string {
	if len(s.Party) == 0 {
		return nil
	}
	var warnings []string
	lead := s.Party[0]

	switch {
	case lead.Fainted() && !inBattle:
		warnings = append(warnings, fmt.Sprintf(
			"CRITICAL: %s has FAINTED! Open menu (START) and switch to a healthy Pokemon, then go to the nearest Pokemon Center!",
			lead.SpeciesName))
	case lead.HPCurrent > 0 && lead.HPPercent() < criticalHPPercent:
		warnings = append(warnings, fmt.Sprintf(
			"CRITICAL HP WARNING: %s is at %d/%d HP (%d%%)! STOP fighting and go to a Pokemon Center NOW! Avoid tall grass and trainers!",
			lead.SpeciesName, lead.HPCurrent, lead.HPMax, lead.HPPercent()))
	}

	allLow := true
	for _, m := range s.Party {
		if m.HPPercent() >= criticalHPPercent {
			allLow = false
			break
		}
	}
	if allLow {
		warnings = append(warnings,
			"EMERGENCY: ALL POKEMON ARE LOW HP! GO TO POKEMON CENTER IMMEDIATELY! Do NOT enter grass or fight anyone!")
	}
	return warnings
}

// stuckHint tracks advisor-level movement and calls out an obstacle after
// three ticks without a position change.
func (a *Advisor) stuckHint(s world.Snapshot) string {
	if a.prevX >= 0 && s.PlayerX == a.prevX && s.PlayerY == a.prevY {
		a.stuckTicks++
	} else {
		a.stuckTicks = 0
	}
	a.prevX = s.PlayerX
	a.prevY = s.PlayerY

	if a.stuckTicks < 3 {
		return ""
	}
	if dir := a.lastDirectionPressed(); dir != "" {
		return fmt.Sprintf(
			"STUCK! You pressed %s but did NOT move. There is an obstacle blocking %s. Try a DIFFERENT direction to go around it.",
			dir, dir)
	}
	return "STUCK! You have not moved for 3+ turns. Try a different direction."
}

// repeatHint calls out four identical consecutive actions.
func (a *Advisor) repeatHint() string {
	if len(a.recentActions) < 4 {
		return ""
	}
	last := a.recentActions[len(a.recentActions)-4:]
	for _, action := range last[1:] {
		if action != last[0] {
			return ""
		}
	}
	return fmt.Sprintf("STOP pressing %s! It is not working. You are blocked. Press a DIFFERENT direction.", last[0])
}

// lastDirectionPressed scans the recent actions for the newest direction.
func (a *Advisor) lastDirectionPressed() string {
	for i := len(a.recentActions) - 1; i >= 0; i-- {
		switch a.recentActions[i] {
		case string(nav.DirUp), string(nav.DirDown), string(nav.DirLeft), string(nav.DirRight):
			return a.recentActions[i]
		}
	}
	return ""
}

// RecordAction records the action the decision-maker chose this tick for
// repeat detection and the stats timeline.
func (a *Advisor) RecordAction(action, observation, phase string) {
	a.recentActions = append(a.recentActions, action)
	if len(a.recentActions) > recentActionWindow {
		a.recentActions = a.recentActions[len(a.recentActions)-recentActionWindow:]
	}
	a.stats.LogAction(a.tick, action, observation, phase)
}

// SetDestination points the navigator at a landmark, returning false for
// unknown map or landmark keys.
func (a *Advisor) SetDestination(mapID int, landmarkKey string) bool {
	ok := a.navigator.SetTarget(mapID, landmarkKey)
	if ok {
		logging.Info().
			Add(logging.SessionID(a.sessionID)).
			Add(logging.MapID(mapID)).
			Add(logging.Target(a.navigator.TargetLabel())).
			Msg("navigation target set")
	} else {
		logging.Warn().
			Add(logging.SessionID(a.sessionID)).
			Add(logging.MapID(mapID)).
			Add(logging.Str("landmark", landmarkKey)).
			Msg("unknown navigation target")
	}
	return ok
}

// RecommendMove proxies the battle tracker's move scoring.
func (a *Advisor) RecommendMove(moves []string, opponentSpecies string) (battle.Suggestion, bool) {
	return a.battle.RecommendMove(moves, opponentSpecies)
}

// Stats exposes the cumulative progress counters.
func (a *Advisor) Stats() *stats.Tracker {
	return a.stats
}
