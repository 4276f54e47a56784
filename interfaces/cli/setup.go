package cli

import (
	"context"
	"fmt"

	domaincfg "github.com/firered-ai/tactician/domain/config"
	"github.com/firered-ai/tactician/domain/goal"
	infracfg "github.com/firered-ai/tactician/infrastructure/config"
	badgerstore "github.com/firered-ai/tactician/infrastructure/storage/badger"
	"github.com/firered-ai/tactician/infrastructure/storage/filesystem"
	"github.com/firered-ai/tactician/infrastructure/storage/memory"
)

// loadConfig loads the advisor configuration, falling back to defaults
// when no path is given.
func loadConfig(path string) (*domaincfg.AdvisorConfig, error) {
	if path == "" {
		return domaincfg.Default(), nil
	}
	cfg, err := infracfg.NewLoader().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openGoalStore opens the configured goal document backend. The returned
// cleanup releases backend resources and is safe to call once.
func openGoalStore(cfg *domaincfg.AdvisorConfig) (goal.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case domaincfg.BackendMemory:
		return memory.NewGoalStore(), func() error { return nil }, nil
	case domaincfg.BackendBadger:
		store, err := badgerstore.NewGoalStore(badgerstore.WithDir(cfg.Storage.Dir))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return store, store.Close, nil
	default:
		store, err := filesystem.NewGoalStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open goal store: %w", err)
		}
		return store, func() error { return nil }, nil
	}
}

// buildPlanner opens the goal store and loads the persisted tree.
func buildPlanner(ctx context.Context, cfg *domaincfg.AdvisorConfig) (*goal.Planner, func() error, error) {
	store, cleanup, err := openGoalStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	planner := goal.NewPlanner(store)
	if err := planner.Load(ctx); err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("failed to load goal document: %w", err)
	}
	return planner, cleanup, nil
}
