package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// SyncHolidaysCmd creates the syncHolidays command. It expands the
// configured recurring holiday rules into concrete calendar overrides
// for a year range and stores them in the planning state.
func SyncHolidaysCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "syncHolidays <from_year> <to_year>",
		Short: "Materialise configured holiday rules into calendar overrides",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromYear, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("from_year must be a number: %w", err)
			}
			toYear, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("to_year must be a number: %w", err)
			}
			if toYear < fromYear {
				return fmt.Errorf("to_year %d is before from_year %d", toYear, fromYear)
			}

			recurrences := make([]calendar.Recurrence, 0, len(app.Cfg.HolidayRules))
			for _, rule := range app.Cfg.HolidayRules {
				recurrences = append(recurrences, calendar.Recurrence{
					RRule:     rule.RRule,
					Label:     rule.Label,
					IsSpecial: rule.IsSpecial,
				})
			}

			from := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
			days, err := calendar.ExpandRecurrences(recurrences, from, to)
			if err != nil {
				return err
			}

			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			existing := make(map[string]bool, len(current.CalendarOverrides))
			for _, d := range current.CalendarOverrides {
				existing[d.Date] = true
			}

			added := 0
			next := current
			for _, d := range days {
				if existing[d.Date] {
					continue
				}
				next = addOverride(next, d, app.Cfg.Actor)
				added++
			}

			if added > 0 {
				if err := app.Store.SaveState(app.Ctx, next); err != nil {
					return err
				}
			}

			fmt.Printf("\n✓ %d feriados agregados (%d-%d)\n\n", added, fromYear, toYear)
			return nil
		},
	}
}

func addOverride(s model.State, day model.CalendarDay, actor string) model.State {
	next := s
	next.CalendarOverrides = append(append([]model.CalendarDay(nil), s.CalendarOverrides...), day)
	return state.RecordEvent(next, state.AuditInput{
		Actor:  actor,
		Action: "calendar.holiday",
		Target: day.Date,
		Change: day.Label,
	})
}
