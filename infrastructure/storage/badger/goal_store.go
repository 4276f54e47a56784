package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/firered-ai/tactician/domain/goal"
)

// documentKey is the single key holding the serialized goal document.
const documentKey = "goals/document"

// GoalStore implements goal.Store on BadgerDB. The whole document lives
// under one key; the planner mutates it in memory and writes it back, so
// per-goal keys would only add read-modify-write hazards.
type GoalStore struct {
	db     *badger.DB
	prefix string
}

// NewGoalStore opens a BadgerDB goal store with the given options.
func NewGoalStore(opts ...Option) (*GoalStore, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	return &GoalStore{db: db, prefix: cfg.KeyPrefix}, nil
}

// Load reads the goal document, reporting goal.ErrDocumentNotFound when
// no document has been saved yet.
func (s *GoalStore) Load(_ context.Context) (*goal.Document, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key())
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, goal.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read goal document: %w", err)
	}

	var doc goal.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode goal document: %w", err)
	}
	if doc.Goals == nil {
		doc.Goals = make(map[string]*goal.Goal)
	}
	return &doc, nil
}

// Save writes the goal document in one transaction.
func (s *GoalStore) Save(_ context.Context, doc *goal.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode goal document: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write goal document: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (s *GoalStore) Close() error {
	return s.db.Close()
}

func (s *GoalStore) key() []byte {
	return []byte(s.prefix + documentKey)
}
