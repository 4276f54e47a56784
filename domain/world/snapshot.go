// Package world defines the per-tick view of the game produced by the
// emulator-side memory reader. It is pure data; no component in this
// repository writes to it.
package world

import (
	"fmt"
	"strings"
)

// BattleKindCode is the raw battle flag read from game memory.
// 0 = not in battle, 1 = wild encounter, 2 = trainer battle.
type BattleKindCode int

const (
	BattleNone    BattleKindCode = 0
	BattleWild    BattleKindCode = 1
	BattleTrainer BattleKindCode = 2
)

// PartyMember is a single party slot as read from game memory.
type PartyMember struct {
	SpeciesName string   `json:"species_name"`
	Level       int      `json:"level"`
	HPCurrent   int      `json:"hp_current"`
	HPMax       int      `json:"hp_max"`
	Moves       []string `json:"moves"`
}

// Fainted reports whether the member has no HP remaining.
func (m PartyMember) Fainted() bool {
	return m.HPCurrent == 0
}

// HPPercent returns the member's HP as an integer percentage.
func (m PartyMember) HPPercent() int {
	if m.HPMax <= 0 {
		return 0
	}
	return 100 * m.HPCurrent / m.HPMax
}

// Snapshot is one tick's view of the game world. Callers must deliver
// snapshots in strict chronological order, exactly once per tick; the
// navigator's and battle tracker's counters are defined only under that
// ordering.
type Snapshot struct {
	PlayerX       int            `json:"player_x"`
	PlayerY       int            `json:"player_y"`
	MapID         int            `json:"map_id"`
	MapName       string         `json:"map_name"`
	InBattle      BattleKindCode `json:"in_battle"`
	Money         int            `json:"money"`
	BadgeCount    int            `json:"badge_count"`
	PokedexSeen   int            `json:"pokedex_seen"`
	PokedexCaught int            `json:"pokedex_caught"`
	Party         []PartyMember  `json:"party"`
}

// AllFainted reports whether every party member is at zero HP.
// An empty party reports false.
func (s Snapshot) AllFainted() bool {
	if len(s.Party) == 0 {
		return false
	}
	for _, m := range s.Party {
		if !m.Fainted() {
			return false
		}
	}
	return true
}

// PartySummary renders the party as a short text block for the
// external decision-maker.
func (s Snapshot) PartySummary() string {
	if len(s.Party) == 0 {
		return "No Pokemon in party."
	}
	var b strings.Builder
	for i, m := range s.Party {
		fmt.Fprintf(&b, "%d. %s Lv.%d HP:%d/%d", i+1, m.SpeciesName, m.Level, m.HPCurrent, m.HPMax)
		if i < len(s.Party)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
