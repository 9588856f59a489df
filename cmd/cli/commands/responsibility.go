package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/services"
)

// ResponsibilityCmd creates the responsibility command.
func ResponsibilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "responsibility <person_id> <date> <shift>",
		Short: "Resolve who is disciplinarily responsible for an absence on a slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shift := model.Shift(args[2])
			if !shift.IsValid() {
				return fmt.Errorf("shift must be DAY or NIGHT, got %q", args[2])
			}

			resolution, err := services.ResolveResponsibility(app.Ctx, app.Store, app.Logger,
				args[0], args[1], shift)
			if err != nil {
				return err
			}

			fmt.Println()
			switch resolution.Kind {
			case model.ResolutionResolved:
				fmt.Printf("✓ Responsable: %s (dueño del puesto: %s, origen: %s)\n",
					resolution.TargetPersonID, resolution.SlotOwnerID, resolution.Source)
			case model.ResolutionUnassigned:
				fmt.Printf("✗ Sin responsable: %s\n", resolution.Reason)
			}
			fmt.Println()

			return nil
		},
	}
}
