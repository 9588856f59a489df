package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// SetPlanCmd creates the setPlan command.
func SetPlanCmd(app *AppContext) *cobra.Command {
	var covered bool

	cmd := &cobra.Command{
		Use:   "setPlan <person_id> <date> <NONE|DAY|NIGHT|BOTH>",
		Short: "Set one person-day cell of the nominal plan",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := calendar.ParseDate(args[1]); err != nil {
				return err
			}

			assignment, err := parseAssignment(args[2])
			if err != nil {
				return err
			}

			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			if current.PersonByID(args[0]) == nil {
				return fmt.Errorf("person %s not found", args[0])
			}

			entry := model.PlanEntry{
				PersonID:     args[0],
				Date:         args[1],
				Assignment:   assignment,
				CoveredBadge: covered,
			}

			next := state.SetPlanEntry(current, entry, app.Cfg.Actor)
			if err := app.Store.SaveState(app.Ctx, next); err != nil {
				return err
			}

			fmt.Printf("\n✓ Plan actualizado: %s %s → %s\n\n", args[0], args[1], assignment)
			return nil
		},
	}

	cmd.Flags().BoolVar(&covered, "covered", false, "Mark the cell with the covered badge")

	return cmd
}

func parseAssignment(s string) (model.ShiftAssignment, error) {
	switch s {
	case "NONE":
		return model.NoAssignment(), nil
	case "DAY":
		return model.SingleAssignment(model.ShiftDay), nil
	case "NIGHT":
		return model.SingleAssignment(model.ShiftNight), nil
	case "BOTH":
		return model.BothAssignment(), nil
	default:
		return model.ShiftAssignment{}, fmt.Errorf("assignment must be NONE, DAY, NIGHT or BOTH, got %q", s)
	}
}
