// Package battle tracks battle-phase transitions from world snapshots,
// classifies outcomes, and scores move choices against the type
// effectiveness table.
package battle

import (
	"fmt"
	"strings"

	"github.com/firered-ai/tactician/domain/world"
)

// Kind is the battle classification while a battle is running.
type Kind string

const (
	KindNone    Kind = "none"
	KindWild    Kind = "wild"
	KindTrainer Kind = "trainer"
)

// kindFromCode maps the raw memory flag to a Kind.
func kindFromCode(code world.BattleKindCode) Kind {
	switch code {
	case world.BattleWild:
		return KindWild
	case world.BattleTrainer:
		return KindTrainer
	default:
		return KindNone
	}
}

// Outcome classifies how a battle ended.
type Outcome string

const (
	OutcomeWon      Outcome = "won"
	OutcomeWhiteout Outcome = "whiteout"
)

// EventType names the transition observed by one Update call.
type EventType string

const (
	EventNone        EventType = ""
	EventBattleStart EventType = "battle_start"
	EventBattleEnd   EventType = "battle_end"
)

// Event reports what one Update observed, for the caller to react to.
type Event struct {
	Type    EventType
	Kind    Kind    // set on battle_start
	Outcome Outcome // set on battle_end
}

// partyHP is the pre-battle HP baseline, one pair per party slot.
type partyHP struct {
	Current int
	Max     int
}

// Tracker detects battle start/end from the per-tick snapshot stream and
// keeps cumulative battle statistics for the process lifetime. The caller
// must deliver snapshots in order, exactly once per tick; the turn counter
// is defined only under that invariant.
type Tracker struct {
	inBattle bool
	kind     Kind
	turns    int

	won       int
	fled      int
	whiteouts int

	baselineHP    []partyHP
	baselineMoney int

	chart TypeChart
}

// NewTracker creates a tracker scoring moves against chart. A nil or empty
// chart leaves all effectiveness queries neutral.
func NewTracker(chart TypeChart) *Tracker {
	return &Tracker{kind: KindNone, chart: chart}
}

// Update consumes one world snapshot and returns the transition event it
// observed, if any.
//
// On entering battle the turn counter resets and party HP and money are
// recorded as the outcome baseline. On leaving battle the outcome is
// classified: a fully fainted party, or money below the baseline, counts
// as a whiteout; anything else counts as a win.
func (t *Tracker) Update(s world.Snapshot) Event {
	switch {
	case !t.inBattle && s.InBattle != world.BattleNone:
		t.inBattle = true
		t.kind = kindFromCode(s.InBattle)
		t.turns = 0
		t.baselineMoney = s.Money
		t.baselineHP = make([]partyHP, len(s.Party))
		for i, m := range s.Party {
			t.baselineHP[i] = partyHP{Current: m.HPCurrent, Max: m.HPMax}
		}
		return Event{Type: EventBattleStart, Kind: t.kind}

	case t.inBattle && s.InBattle == world.BattleNone:
		t.inBattle = false
		outcome := OutcomeWon
		if s.AllFainted() || s.Money < t.baselineMoney {
			outcome = OutcomeWhiteout
			t.whiteouts++
		} else {
			t.won++
		}
		t.kind = KindNone
		return Event{Type: EventBattleEnd, Outcome: outcome}

	case t.inBattle:
		t.turns++
	}
	return Event{}
}

// InBattle reports whether a battle is currently running.
func (t *Tracker) InBattle() bool {
	return t.inBattle
}

// Kind returns the current battle kind, KindNone outside battle.
func (t *Tracker) Kind() Kind {
	return t.kind
}

// Turns returns the turn counter for the current battle.
func (t *Tracker) Turns() int {
	return t.turns
}

// Stats is the cumulative battle record for the process lifetime.
type Stats struct {
	Won       int `json:"battles_won"`
	Fled      int `json:"battles_fled"`
	Whiteouts int `json:"whiteouts"`
}

// Stats returns the cumulative counters.
func (t *Tracker) Stats() Stats {
	return Stats{Won: t.won, Fled: t.fled, Whiteouts: t.whiteouts}
}

// dragOnTurns is the turn count past which the context text suggests
// escalating or fleeing.
const dragOnTurns = 25

// Context builds the advisory battle text for the external decision-maker.
// Empty when not in battle.
func (t *Tracker) Context(s world.Snapshot) string {
	if !t.inBattle {
		return ""
	}

	label := "TRAINER"
	if t.kind == KindWild {
		label = "WILD"
	}
	parts := []string{fmt.Sprintf("IN BATTLE (%s) - Turn %d", label, t.turns)}

	if len(s.Party) > 0 {
		parts = append(parts, "\nYour team:")
		for i, m := range s.Party {
			parts = append(parts, fmt.Sprintf("  %d. %s HP:%d/%d (%d%%) Moves: %s",
				i+1, m.SpeciesName, m.HPCurrent, m.HPMax, m.HPPercent(), strings.Join(m.Moves, ", ")))
		}
	}

	if t.turns > dragOnTurns {
		parts = append(parts, "\nWARNING: This battle is dragging on. Consider using stronger moves or running.")
	}

	return strings.Join(parts, "\n")
}
