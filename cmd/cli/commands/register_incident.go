package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/incident"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/services"
)

// RegisterIncidentCmd creates the registerIncident command.
func RegisterIncidentCmd(app *AppContext) *cobra.Command {
	var duration int
	var notes string
	var slotOwner string

	cmd := &cobra.Command{
		Use:   "registerIncident <person_id> <type> <start_date>",
		Short: "Register an incident (TARDANZA, AUSENCIA, ERROR, OTRO, LICENCIA, VACACIONES, OVERRIDE)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := incident.RegistrationInput{
				PersonID:    args[0],
				Type:        model.IncidentType(args[1]),
				StartDate:   args[2],
				Duration:    duration,
				SlotOwnerID: slotOwner,
				Notes:       notes,
			}

			today := time.Now().Format(model.DateLayout)
			outcome, err := services.RegisterIncident(app.Ctx, app.Store, app.Logger,
				input, app.Cfg.Actor, today, app.Cfg.VacationLimitDays)
			if err != nil {
				return err
			}

			if !outcome.OK {
				fmt.Printf("\n✗ Rechazado [%s]: %s\n\n", outcome.Code, outcome.Reason)
				return nil
			}

			fmt.Printf("\n✓ Incidente registrado: %s\n", outcome.NewID)
			if outcome.Warning != "" {
				fmt.Printf("  ⚠ %s\n", outcome.Warning)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 1, "Duration in days (LICENCIA/VACACIONES)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&slotOwner, "slot-owner", "", "Owner of the affected slot, when different from the disciplined person")

	return cmd
}

// RemoveIncidentCmd creates the removeIncident command.
func RemoveIncidentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeIncident <incident_id>",
		Short: "Delete an incident by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveIncident(app.Ctx, app.Store, app.Logger, args[0], app.Cfg.Actor); err != nil {
				return err
			}
			fmt.Printf("\n✓ Incidente eliminado: %s\n\n", args[0])
			return nil
		},
	}
}
