package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates advisor configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(cfg *AdvisorConfig) ValidationErrors {
	v.errors = nil

	if cfg.Name == "" {
		v.addError("name", "name is required")
	}
	if cfg.Version == "" {
		v.addError("version", "version is required")
	}
	v.validateSession(cfg)
	v.validateStorage(cfg)
	v.validateLogging(cfg)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateSession(cfg *AdvisorConfig) {
	if cfg.Session.TickInterval < 0 {
		v.addError("session.tick_interval", "must not be negative")
	}
	if cfg.Session.ReviewEvery < 0 {
		v.addError("session.review_every", "must not be negative")
	}
	if cfg.Session.SaveReminderEvery < 0 {
		v.addError("session.save_reminder_every", "must not be negative")
	}
}

func (v *Validator) validateStorage(cfg *AdvisorConfig) {
	switch cfg.Storage.Backend {
	case "", BackendFile:
		// Path gains a default later.
	case BackendBadger:
		if cfg.Storage.Dir == "" {
			v.addError("storage.dir", "dir is required for the badger backend")
		}
	case BackendMemory:
	default:
		v.addError("storage.backend", fmt.Sprintf("unknown backend %q", cfg.Storage.Backend))
	}
}

func (v *Validator) validateLogging(cfg *AdvisorConfig) {
	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		v.addError("logging.level", fmt.Sprintf("unknown level %q", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		v.addError("logging.format", fmt.Sprintf("unknown format %q", cfg.Logging.Format))
	}
}
