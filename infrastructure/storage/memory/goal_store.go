// Package memory provides in-memory storage implementations, used for
// tests and throwaway sessions that should not persist progression.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/firered-ai/tactician/domain/goal"
)

// GoalStore holds the goal document in memory. Documents are stored as
// serialized snapshots so callers never share mutable state with the store.
type GoalStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewGoalStore creates an empty in-memory store.
func NewGoalStore() *GoalStore {
	return &GoalStore{}
}

// Load returns the last saved document, or goal.ErrDocumentNotFound when
// nothing has been saved yet.
func (s *GoalStore) Load(ctx context.Context) (*goal.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, goal.ErrDocumentNotFound
	}

	var doc goal.Document
	if err := json.Unmarshal(s.data, &doc); err != nil {
		return nil, goal.ErrDocumentNotFound
	}
	if doc.Goals == nil {
		doc.Goals = make(map[string]*goal.Goal)
	}
	return &doc, nil
}

// Save replaces the stored document.
func (s *GoalStore) Save(ctx context.Context, doc *goal.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}
