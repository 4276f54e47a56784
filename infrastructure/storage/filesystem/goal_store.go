// Package filesystem provides filesystem-based storage implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/firered-ai/tactician/domain/goal"
)

// GoalStore persists the goal document as a single JSON file. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated document behind.
type GoalStore struct {
	path string
}

// NewGoalStore creates a store writing to path, creating the parent
// directory if needed.
func NewGoalStore(path string) (*GoalStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create goal directory: %w", err)
	}
	return &GoalStore{path: path}, nil
}

// Load reads the goal document. A missing or unreadable file reports
// goal.ErrDocumentNotFound so a fresh session starts empty.
func (s *GoalStore) Load(_ context.Context) (*goal.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goal.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read goal document: %w", err)
	}

	var doc goal.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// A corrupt document is unrecoverable; treat it as absent
		// rather than wedging the session.
		return nil, goal.ErrDocumentNotFound
	}
	if doc.Goals == nil {
		doc.Goals = make(map[string]*goal.Goal)
	}
	return &doc, nil
}

// Save writes the goal document atomically.
func (s *GoalStore) Save(_ context.Context, doc *goal.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode goal document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write goal document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // #nosec G104 -- best-effort cleanup in error path
		return fmt.Errorf("failed to replace goal document: %w", err)
	}
	return nil
}
