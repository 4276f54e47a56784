// Package stats accumulates player progress by comparing consecutive
// world snapshots. All counters derive from ground-truth memory reads,
// not from parsing screen text.
package stats

import (
	"fmt"

	"github.com/firered-ai/tactician/domain/world"
)

// EventType names a milestone detected by one Update call.
type EventType string

const (
	EventCaught      EventType = "pokemon_caught"
	EventLevelRecord EventType = "level_record"
	EventBadgeEarned EventType = "badge_earned"
	EventWhiteout    EventType = "whiteout"
)

// Event is a milestone with the counter value that triggered it.
type Event struct {
	Type  EventType
	Count int // new catches, record level, badge total, or whiteout total
}

// historyLimit bounds the retained action log.
const historyLimit = 30

// Action is one entry of the recent-action timeline.
type Action struct {
	Tick        int    `json:"tick"`
	Action      string `json:"action"`
	Observation string `json:"observation"`
	Phase       string `json:"phase"`
}

// observationLimit truncates logged observations to keep entries short.
const observationLimit = 120

// Tracker holds the cumulative progress counters for a play session.
// Snapshots must be delivered in order, one per tick.
type Tracker struct {
	StepsTaken    int `json:"steps_taken"`
	PokemonCaught int `json:"pokemon_caught"`
	HighestLevel  int `json:"highest_level"`
	BattlesWon    int `json:"battles_won"`
	Whiteouts     int `json:"whiteouts"`
	BadgesEarned  int `json:"badges_earned"`
	PokedexSeen   int `json:"pokedex_seen"`
	PokedexCaught int `json:"pokedex_caught"`
	TotalTicks    int `json:"total_ticks"`

	History []Action `json:"action_history"`

	prevX, prevY      int
	prevPokedexCaught int
	prevBadges        int
	prevMoney         int
}

// NewTracker creates an empty tracker. The first Update establishes the
// baselines and never reports movement or milestones by itself.
func NewTracker() *Tracker {
	return &Tracker{prevX: -1, prevY: -1}
}

// Update compares s against the previous snapshot and returns the
// milestones it detected, in detection order.
func (t *Tracker) Update(s world.Snapshot) []Event {
	t.TotalTicks++
	var events []Event

	if t.prevX >= 0 && t.prevY >= 0 {
		if s.PlayerX != t.prevX || s.PlayerY != t.prevY {
			t.StepsTaken++
		}
	}
	t.prevX = s.PlayerX
	t.prevY = s.PlayerY

	if s.PokedexCaught > t.prevPokedexCaught {
		caught := s.PokedexCaught - t.prevPokedexCaught
		t.PokemonCaught += caught
		events = append(events, Event{Type: EventCaught, Count: caught})
	}
	t.prevPokedexCaught = s.PokedexCaught
	t.PokedexSeen = s.PokedexSeen
	t.PokedexCaught = s.PokedexCaught

	for _, m := range s.Party {
		if m.Level > t.HighestLevel {
			t.HighestLevel = m.Level
			events = append(events, Event{Type: EventLevelRecord, Count: m.Level})
		}
	}

	if s.BadgeCount > t.prevBadges {
		t.BadgesEarned = s.BadgeCount
		events = append(events, Event{Type: EventBadgeEarned, Count: s.BadgeCount})
	}
	t.prevBadges = s.BadgeCount

	// Whiteout needs both signals: the party wiped AND money dropped.
	// Money alone also falls on trainer losses detected elsewhere.
	if len(s.Party) > 0 && s.AllFainted() && s.Money < t.prevMoney && t.prevMoney > 0 {
		t.Whiteouts++
		events = append(events, Event{Type: EventWhiteout, Count: t.Whiteouts})
	}
	t.prevMoney = s.Money

	return events
}

// RecordWin bumps the battles-won counter.
func (t *Tracker) RecordWin() {
	t.BattlesWon++
}

// LogAction appends one entry to the recent-action timeline, truncating
// the observation and evicting entries past the retention limit.
func (t *Tracker) LogAction(tick int, action, observation, phase string) {
	if len(observation) > observationLimit {
		observation = observation[:observationLimit]
	}
	t.History = append(t.History, Action{
		Tick:        tick,
		Action:      action,
		Observation: observation,
		Phase:       phase,
	})
	if len(t.History) > historyLimit {
		t.History = t.History[len(t.History)-historyLimit:]
	}
}

// Summary renders the counters as a one-line progress report.
func (t *Tracker) Summary() string {
	return fmt.Sprintf("steps=%d caught=%d top_level=%d badges=%d dex=%d/%d whiteouts=%d ticks=%d",
		t.StepsTaken, t.PokemonCaught, t.HighestLevel, t.BadgesEarned,
		t.PokedexCaught, t.PokedexSeen, t.Whiteouts, t.TotalTicks)
}
