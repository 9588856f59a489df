package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/incident"
	"github.com/centroops/guardia/pkg/core/model"
)

// IncidentDatesCmd creates the incidentDates command, a dry-run view of
// how an incident would expand into calendar dates.
func IncidentDatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "incidentDates <person_id> <type> <start_date> <duration>",
		Short: "Preview the calendar dates an incident would occupy",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("duration must be a number: %w", err)
			}

			st, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			person := st.PersonByID(args[0])
			if person == nil {
				return fmt.Errorf("person %s not found", args[0])
			}

			inc := model.Incident{
				PersonID:  person.ID,
				Type:      model.IncidentType(args[1]),
				StartDate: args[2],
				Duration:  duration,
			}

			cal := calendar.New(st.CalendarOverrides)
			res := incident.ResolveDates(inc, cal, *person, app.Logger)

			fmt.Printf("\n%s %s desde %s (%d días)\n\n", inc.Type, person.Name, inc.StartDate, duration)
			if len(res.Dates) == 0 {
				fmt.Println("  (sin fechas resueltas)")
				fmt.Println()
				return nil
			}

			for i, d := range res.Dates {
				fmt.Printf("  %2d. %s\n", i+1, d)
			}
			fmt.Printf("\n  Regresa el %s\n\n", res.ReturnDate)

			return nil
		},
	}
}
