package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firered-ai/tactician/infrastructure/gamedata"
)

// newTargetsCmd creates the targets command.
func (a *App) newTargetsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "targets <map-id>",
		Short: "List navigation landmarks for a map",
		Long: `List the named landmarks registered for a map, the same set the run
command exposes as GOTO_<KEY> destinations.

Examples:
  tactician targets 3 -c advisor.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid map id %q: %w", args[0], err)
			}
			return a.showTargets(configPath, mapID)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}

func (a *App) showTargets(configPath string, mapID int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	registry, err := gamedata.LoadLandmarks(cfg.Data.Landmarks)
	if err != nil {
		return fmt.Errorf("failed to load landmarks: %w", err)
	}

	name, ok := registry.MapName(mapID)
	if !ok {
		fmt.Fprintf(a.stdout, "No landmarks registered for map %d\n", mapID)
		return nil
	}

	fmt.Fprintf(a.stdout, "Map %d (%s):\n", mapID, name)
	for _, key := range registry.Keys(mapID) {
		landmark, _ := registry.Lookup(mapID, key)
		fmt.Fprintf(a.stdout, "  GOTO_%s = walk to %s (%d, %d)\n", strings.ToUpper(key), landmark.Label, landmark.X, landmark.Y)
	}
	return nil
}
