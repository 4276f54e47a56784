// Package config provides the advisor configuration model.
package config

import "time"

// AdvisorConfig is the complete advisor configuration.
type AdvisorConfig struct {
	// Name is a human-readable name for this configuration.
	Name string `json:"name" yaml:"name"`
	// Version is the configuration schema version.
	Version string `json:"version" yaml:"version"`

	// Session contains tick-loop settings.
	Session SessionConfig `json:"session,omitempty" yaml:"session,omitempty"`
	// Snapshot locates the emulator-written game state file.
	Snapshot SnapshotConfig `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	// Storage selects and locates the goal document backend.
	Storage StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
	// Data locates the static game data files.
	Data DataConfig `json:"data,omitempty" yaml:"data,omitempty"`
	// Logging configures the structured logger.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// SessionConfig contains tick-loop settings.
type SessionConfig struct {
	// TickInterval is the pause between advisory ticks.
	TickInterval Duration `json:"tick_interval,omitempty" yaml:"tick_interval,omitempty"`
	// ReviewEvery renders the goal tree into the advice every N ticks.
	ReviewEvery int `json:"review_every,omitempty" yaml:"review_every,omitempty"`
	// SaveReminderEvery emits a save reminder every N ticks.
	SaveReminderEvery int `json:"save_reminder_every,omitempty" yaml:"save_reminder_every,omitempty"`
}

// SnapshotConfig locates the game state file.
type SnapshotConfig struct {
	// Path is the JSON file the emulator-side script writes each frame.
	Path string `json:"path" yaml:"path"`
	// PollInterval is the fallback poll cadence when file watching is
	// unavailable.
	PollInterval Duration `json:"poll_interval,omitempty" yaml:"poll_interval,omitempty"`
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// StorageConfig selects the goal document backend. The memory backend
// keeps the session ephemeral; nothing survives the process.
type StorageConfig struct {
	// Backend is "file", "badger", or "memory".
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// Path is the goal document path for the file backend.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Dir is the database directory for the badger backend.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// DataConfig locates the static game data files.
type DataConfig struct {
	// Landmarks is the landmark registry JSON file.
	Landmarks string `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`
	// TypeChart is the type effectiveness JSON file. Empty uses the
	// built-in chart.
	TypeChart string `json:"type_chart,omitempty" yaml:"type_chart,omitempty"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is the output format (json or console).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *AdvisorConfig {
	return &AdvisorConfig{
		Name:    "tactician",
		Version: "1.0",
		Session: SessionConfig{
			TickInterval:      Duration(500 * time.Millisecond),
			ReviewEvery:       25,
			SaveReminderEvery: 50,
		},
		Snapshot: SnapshotConfig{
			Path:         "data/game_state.json",
			PollInterval: Duration(500 * time.Millisecond),
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "data/goals.json",
		},
		Data: DataConfig{
			Landmarks: "data/landmarks.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ApplyDefaults fills unset fields from Default.
func (c *AdvisorConfig) ApplyDefaults() {
	def := Default()
	if c.Name == "" {
		c.Name = def.Name
	}
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.Session.TickInterval == 0 {
		c.Session.TickInterval = def.Session.TickInterval
	}
	if c.Session.ReviewEvery == 0 {
		c.Session.ReviewEvery = def.Session.ReviewEvery
	}
	if c.Session.SaveReminderEvery == 0 {
		c.Session.SaveReminderEvery = def.Session.SaveReminderEvery
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = def.Snapshot.Path
	}
	if c.Snapshot.PollInterval == 0 {
		c.Snapshot.PollInterval = def.Snapshot.PollInterval
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Backend == BackendFile && c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Data.Landmarks == "" {
		c.Data.Landmarks = def.Data.Landmarks
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

// Duration wraps time.Duration with human-readable serialization ("2s",
// "500ms") in both JSON and YAML.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}
