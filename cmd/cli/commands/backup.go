package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// ExportCmd creates the export command, a JSON backup of the aggregate
// state.
func ExportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the planning state to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(current, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode state: %w", err)
			}

			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Printf("\n✓ Estado exportado a %s\n\n", args[0])
			return nil
		},
	}
}

// ImportCmd creates the import command. A backup at an older schema
// version is rejected rather than migrated.
func ImportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a planning state backup, replacing the stored state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			var imported model.State
			if err := json.Unmarshal(data, &imported); err != nil {
				return fmt.Errorf("failed to decode backup: %w", err)
			}

			if imported.SchemaVersion < state.SchemaVersion {
				return fmt.Errorf("backup schema version %d is older than current %d",
					imported.SchemaVersion, state.SchemaVersion)
			}

			next := state.RecordEvent(state.Normalize(imported), state.AuditInput{
				Actor:  app.Cfg.Actor,
				Action: "state.import",
				Target: args[0],
			})

			if err := app.Store.SaveState(app.Ctx, next); err != nil {
				return err
			}

			fmt.Printf("\n✓ Estado importado desde %s\n\n", args[0])
			return nil
		},
	}
}
