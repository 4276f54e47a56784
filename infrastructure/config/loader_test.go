package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/firered-ai/tactician/domain/config"
)

func TestLoader_LoadYAML(t *testing.T) {
	doc := `
name: my-session
session:
  tick_interval: 2s
  review_every: 10
storage:
  backend: badger
  dir: /tmp/tactician
logging:
  level: debug
`
	cfg, err := NewLoader().LoadString(doc, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Name != "my-session" {
		t.Errorf("Name = %q, want my-session", cfg.Name)
	}
	if got := time.Duration(cfg.Session.TickInterval); got != 2*time.Second {
		t.Errorf("TickInterval = %v, want 2s", got)
	}
	if cfg.Session.ReviewEvery != 10 {
		t.Errorf("ReviewEvery = %d, want 10", cfg.Session.ReviewEvery)
	}
	if cfg.Storage.Backend != config.BackendBadger {
		t.Errorf("Backend = %q, want badger", cfg.Storage.Backend)
	}
	// Untouched fields gain defaults.
	if cfg.Version != "1.0" {
		t.Errorf("Version = %q, want default 1.0", cfg.Version)
	}
	if cfg.Session.SaveReminderEvery != 50 {
		t.Errorf("SaveReminderEvery = %d, want default 50", cfg.Session.SaveReminderEvery)
	}
}

func TestLoader_LoadJSON(t *testing.T) {
	doc := `{"name": "json-session", "snapshot": {"path": "/var/run/state.json"}}`
	cfg, err := NewLoader().LoadString(doc, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Snapshot.Path != "/var/run/state.json" {
		t.Errorf("Snapshot.Path = %q, want /var/run/state.json", cfg.Snapshot.Path)
	}
}

func TestLoader_EmptyDocumentIsAllDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadString("{}", FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Name != "tactician" || cfg.Storage.Backend != config.BackendFile {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoader_EnvExpansion(t *testing.T) {
	os.Setenv("TACTICIAN_STATE", "/data/state.json")
	defer os.Unsetenv("TACTICIAN_STATE")

	doc := "snapshot:\n  path: ${TACTICIAN_STATE}\n"
	cfg, err := NewLoader().LoadString(doc, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Snapshot.Path != "/data/state.json" {
		t.Errorf("Snapshot.Path = %q, want expanded value", cfg.Snapshot.Path)
	}
}

func TestLoader_ValidationFailure(t *testing.T) {
	doc := "storage:\n  backend: mysql\n"
	_, err := NewLoader().LoadString(doc, FormatYAML)
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("LoadString() error = %v, want ErrValidationFailed", err)
	}
}

func TestLoader_ValidationDisabled(t *testing.T) {
	doc := "storage:\n  backend: mysql\n"
	loader := NewLoaderWithOptions(WithValidation(false))
	if _, err := loader.LoadString(doc, FormatYAML); err != nil {
		t.Errorf("LoadString() error = %v, want nil with validation off", err)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advisor.yaml")
	if err := os.WriteFile(path, []byte("name: from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Name != "from-file" {
		t.Errorf("Name = %q, want from-file", cfg.Name)
	}
}

func TestLoader_LoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("LoadFile() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoader_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advisor.toml")
	if err := os.WriteFile(path, []byte("name = 'x'"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().LoadFile(path)
	if !errors.Is(err, config.ErrUnsupportedFormat) {
		t.Errorf("LoadFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoader_MalformedYAML(t *testing.T) {
	_, err := NewLoader().LoadString("name: [unclosed", FormatYAML)
	if !errors.Is(err, config.ErrInvalidFormat) {
		t.Errorf("LoadString() error = %v, want ErrInvalidFormat", err)
	}
}
