package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firered-ai/tactician/application"
	"github.com/firered-ai/tactician/domain/battle"
	"github.com/firered-ai/tactician/domain/nav"
	"github.com/firered-ai/tactician/infrastructure/gamedata"
	"github.com/firered-ai/tactician/infrastructure/logging"
	"github.com/firered-ai/tactician/infrastructure/snapshot"
)

// runOptions holds options for the run command.
type runOptions struct {
	configPath string
	seed       bool
	maxTicks   int
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch the game state file and print per-tick advice",
		Long: `Run the advisory loop: watch the emulator-written game state file and
print an advisory block whenever the state changes.

Examples:
  # Run with the default configuration
  tactician run

  # Run with a config file and the FireRed progression pre-seeded
  tactician run -c advisor.yaml --seed

  # Process a bounded number of ticks (useful for smoke tests)
  tactician run --max-ticks 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdvisor(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "Seed the FireRed progression when the goal tree is empty")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 0, "Stop after N ticks (0 = run until interrupted)")

	return cmd
}

// runAdvisor wires the advisory pipeline and drives it from the snapshot
// watcher until the context is cancelled.
func (a *App) runAdvisor(ctx context.Context, opts *runOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	planner, cleanup, err := buildPlanner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup() // #nosec G104 -- store cleanup on shutdown

	if opts.seed && planner.Len() == 0 {
		if _, err := planner.SeedFireRedProgression(ctx); err != nil {
			return fmt.Errorf("failed to seed progression: %w", err)
		}
		fmt.Fprintln(a.stdout, "Seeded FireRed progression.")
	}

	registry, err := gamedata.LoadLandmarks(cfg.Data.Landmarks)
	if err != nil {
		return err
	}
	chart, err := gamedata.LoadTypeChart(cfg.Data.TypeChart)
	if err != nil {
		return err
	}

	advisor, err := application.NewAdvisor(application.AdvisorConfig{
		Planner:           planner,
		Navigator:         nav.NewNavigator(registry),
		Battle:            battle.NewTracker(chart),
		ReviewEvery:       cfg.Session.ReviewEvery,
		SaveReminderEvery: cfg.Session.SaveReminderEvery,
	})
	if err != nil {
		return err
	}

	logging.Info().
		Add(logging.SessionID(advisor.SessionID())).
		Add(logging.Path(cfg.Snapshot.Path)).
		Msg("advisory session started")

	reader := snapshot.NewReader(cfg.Snapshot.Path)
	watcher := snapshot.NewWatcher(reader, time.Duration(cfg.Snapshot.PollInterval))
	snapshots, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	ticks := 0
	for s := range snapshots {
		advice, err := advisor.Tick(ctx, s)
		if err != nil {
			return err
		}
		if text := advice.Text(); text != "" {
			fmt.Fprintf(a.stdout, "--- tick %d ---\n%s\n", advice.Tick, text)
		}

		ticks++
		if opts.maxTicks > 0 && ticks >= opts.maxTicks {
			break
		}
	}

	fmt.Fprintf(a.stdout, "Session %s finished: %s\n", advisor.SessionID(), advisor.Stats().Summary())
	return nil
}
