package config

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDuration_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		duration Duration
		wantJSON string
	}{
		{"zero value", Duration(0), `"0s"`},
		{"500 milliseconds", Duration(500 * time.Millisecond), `"500ms"`},
		{"5 seconds", Duration(5 * time.Second), `"5s"`},
		{"1 minute 30 seconds", Duration(90 * time.Second), `"1m30s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.duration)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", data, tt.wantJSON)
			}

			var got Duration
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.duration {
				t.Errorf("round trip = %v, want %v", got, tt.duration)
			}
		})
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var cfg AdvisorConfig
	doc := "session:\n  tick_interval: 2s\n"
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := time.Duration(cfg.Session.TickInterval); got != 2*time.Second {
		t.Errorf("tick_interval = %v, want 2s", got)
	}
}

func TestDuration_UnmarshalJSONNull(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if d != 0 {
		t.Errorf("d = %v, want 0", d)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Session.TickInterval != Duration(500*time.Millisecond) {
		t.Errorf("TickInterval = %v, want 500ms", cfg.Session.TickInterval)
	}
	if cfg.Session.ReviewEvery != 25 {
		t.Errorf("ReviewEvery = %d, want 25", cfg.Session.ReviewEvery)
	}
	if cfg.Session.SaveReminderEvery != 50 {
		t.Errorf("SaveReminderEvery = %d, want 50", cfg.Session.SaveReminderEvery)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, BackendFile)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &AdvisorConfig{
		Storage: StorageConfig{Backend: BackendBadger, Dir: "/tmp/db"},
		Logging: LoggingConfig{Level: "debug"},
	}
	cfg.ApplyDefaults()

	if cfg.Name != "tactician" {
		t.Errorf("Name = %q, want tactician", cfg.Name)
	}
	if cfg.Storage.Backend != BackendBadger {
		t.Errorf("Backend = %q, explicit value overwritten", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("Path = %q, want empty for badger backend", cfg.Storage.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, explicit value overwritten", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
}
