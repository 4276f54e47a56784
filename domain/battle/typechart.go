package battle

import "strconv"

// TypeChart maps an attacking type to its per-defending-type damage
// multipliers. Types absent from the chart are neutral.
type TypeChart map[string]map[string]float64

// Effectiveness returns the combined multiplier for an attack of
// attackType against a defender with the given type(s). Dual-typed
// defenders apply both factors multiplicatively. A nil chart, unknown
// attack type, or unknown defending type contributes a neutral 1.0.
func (c TypeChart) Effectiveness(attackType string, defendTypes []string) float64 {
	multiplier := 1.0
	if len(c) == 0 || attackType == "" {
		return multiplier
	}
	matchups, ok := c[attackType]
	if !ok {
		return multiplier
	}
	for _, dt := range defendTypes {
		if factor, ok := matchups[dt]; ok {
			multiplier *= factor
		}
	}
	return multiplier
}

// Suggestion names the most favorable move against an opponent.
type Suggestion struct {
	Move       string
	Multiplier float64
}

// String renders the suggestion as advisory text.
func (s Suggestion) String() string {
	return "Use " + s.Move + " (super effective x" + strconv.FormatFloat(s.Multiplier, 'g', -1, 64) + "!)"
}

// emptyMoveSlot is the placeholder the memory reader reports for unused
// move slots.
const emptyMoveSlot = "---"

// RecommendMove scores each available move against the opponent's known
// type(s) and returns the first strictly best one, provided its
// effectiveness exceeds neutral. Returns ok=false when the opponent's
// species is unknown or no move stands out as favorable.
func (t *Tracker) RecommendMove(moves []string, opponentSpecies string) (Suggestion, bool) {
	defendTypes := SpeciesTypes(opponentSpecies)
	if len(defendTypes) == 0 {
		return Suggestion{}, false
	}

	best := Suggestion{}
	for _, move := range moves {
		if move == "" || move == emptyMoveSlot {
			continue
		}
		moveType, ok := MoveType(move)
		if !ok {
			continue
		}
		effectiveness := t.chart.Effectiveness(moveType, defendTypes)
		if effectiveness > best.Multiplier {
			best = Suggestion{Move: move, Multiplier: effectiveness}
		}
	}

	if best.Move == "" || best.Multiplier <= 1.0 {
		return Suggestion{}, false
	}
	return best, true
}
