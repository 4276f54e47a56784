package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"bogus", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
}

func newTestLogger(buf *bytes.Buffer) *bolt.Logger {
	return bolt.New(bolt.NewJSONHandler(buf))
}

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  []string
	}{
		{"session", SessionID("abc"), []string{`"session_id":"abc"`}},
		{"tick", Tick(42), []string{`"tick":42`}},
		{"goal id", GoalID("goal_3"), []string{`"goal_id":"goal_3"`}},
		{"goal name", GoalName("Defeat Brock"), []string{`"goal":"Defeat Brock"`}},
		{"goal status", GoalStatus("active"), []string{`"status":"active"`}},
		{"map", MapID(3), []string{`"map_id":3`}},
		{"position", Position(10, 12), []string{`"x":10`, `"y":12`}},
		{"target", Target("Pokemon Center"), []string{`"target":"Pokemon Center"`}},
		{"direction", Direction("UP"), []string{`"direction":"UP"`}},
		{"stuck", StuckEvents(2), []string{`"stuck_events":2`}},
		{"battle kind", BattleKind("wild"), []string{`"battle_kind":"wild"`}},
		{"outcome", Outcome("won"), []string{`"outcome":"won"`}},
		{"turn", Turn(7), []string{`"turn":7`}},
		{"count", Count(5), []string{`"count":5`}},
		{"path", Path("/tmp/goals.json"), []string{`"path":"/tmp/goals.json"`}},
		{"duration", Duration(1500 * time.Millisecond), []string{`"duration_ms":1500`}},
		{"error", ErrorField(errors.New("boom")), []string{`boom`}},
		{"component", Component("navigator"), []string{`"component":"navigator"`}},
		{"operation", Operation("set_target"), []string{`"operation":"set_target"`}},
		{"str", Str("note", "hi"), []string{`"note":"hi"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf)
			NewEvent(logger.Info()).Add(tt.field).Msg("test")

			got := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
		})
	}
}

func TestErrorFieldNil(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	NewEvent(logger.Info()).Add(ErrorField(nil)).Msg("test")

	if got := buf.String(); strings.Contains(got, "error") {
		t.Errorf("output %q has an error field for a nil error", got)
	}
}
