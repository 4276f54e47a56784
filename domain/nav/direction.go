// Package nav provides the stuck-aware grid navigator: it walks the player
// toward a landmark one directional hint per tick, detouring reactively
// around obstacles it cannot see.
package nav

// Direction is a single movement hint consumed by the external
// decision-maker. Values match the emulator button tokens.
type Direction string

const (
	DirUp    Direction = "UP"
	DirDown  Direction = "DOWN"
	DirLeft  Direction = "LEFT"
	DirRight Direction = "RIGHT"
)

// String returns the button token for the direction.
func (d Direction) String() string {
	return string(d)
}
