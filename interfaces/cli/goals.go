package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// goalsOptions holds options for the goals command.
type goalsOptions struct {
	configPath string
	seed       bool
}

// newGoalsCmd creates the goals command.
func (a *App) newGoalsCmd() *cobra.Command {
	opts := &goalsOptions{}

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Render the persisted goal tree",
		Long: `Render the goal tree from the configured store.

Examples:
  # Show the current progression
  tactician goals -c advisor.yaml

  # Seed the FireRed progression into an empty store and show it
  tactician goals --seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showGoals(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "Seed the FireRed progression when the goal tree is empty")

	return cmd
}

func (a *App) showGoals(cmd *cobra.Command, opts *goalsOptions) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	planner, cleanup, err := buildPlanner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup() // #nosec G104 -- store cleanup on shutdown

	if opts.seed && planner.Len() == 0 {
		if _, err := planner.SeedFireRedProgression(ctx); err != nil {
			return fmt.Errorf("failed to seed progression: %w", err)
		}
	}

	fmt.Fprintln(a.stdout, planner.RenderTree())
	return nil
}
