package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for advisor logging.

// SessionID adds a session ID field.
func SessionID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session_id", id)
	}
}

// Tick adds the game-loop tick number.
func Tick(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("tick", n)
	}
}

// GoalID adds a goal ID field.
func GoalID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("goal_id", id)
	}
}

// GoalName adds a goal name field.
func GoalName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("goal", name)
	}
}

// GoalStatus adds a goal status field.
func GoalStatus(status string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("status", status)
	}
}

// MapID adds the numeric map identifier.
func MapID(id int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("map_id", id)
	}
}

// Position adds the player tile coordinates.
func Position(x, y int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("x", x).Int("y", y)
	}
}

// Target adds a navigation target label.
func Target(label string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("target", label)
	}
}

// Direction adds a movement direction field.
func Direction(dir string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("direction", dir)
	}
}

// StuckEvents adds the navigator stuck-event counter.
func StuckEvents(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("stuck_events", n)
	}
}

// BattleKind adds the running battle classification.
func BattleKind(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("battle_kind", kind)
	}
}

// Outcome adds a battle outcome field.
func Outcome(outcome string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", outcome)
	}
}

// Turn adds the battle turn counter.
func Turn(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("turn", n)
	}
}

// Count adds a generic count field.
func Count(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("count", n)
	}
}

// Path adds a filesystem path field.
func Path(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", path)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
