package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// AddPersonCmd creates the addPerson command.
func AddPersonCmd(app *AppContext) *cobra.Command {
	var offDays string
	var mix string

	cmd := &cobra.Command{
		Use:   "addPerson <id> <name> <base_shift>",
		Short: "Add a person with a weekly base schedule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseShift := model.Shift(args[2])
			if !baseShift.IsValid() {
				return fmt.Errorf("base shift must be DAY or NIGHT, got %q", args[2])
			}

			schedule, err := parseBaseSchedule(offDays)
			if err != nil {
				return err
			}

			profile := model.MixProfile(mix)
			if profile != model.MixNone && profile != model.MixWeekday && profile != model.MixWeekend {
				return fmt.Errorf("mix profile must be WEEKDAY or WEEKEND, got %q", mix)
			}

			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			if current.PersonByID(args[0]) != nil {
				return fmt.Errorf("person %s already exists", args[0])
			}

			person := model.Person{
				ID:           args[0],
				Name:         args[1],
				BaseShift:    baseShift,
				BaseSchedule: schedule,
				MixProfile:   profile,
				Active:       true,
				OrderIndex:   len(current.People),
			}

			next := state.AddPerson(current, person, app.Cfg.Actor)
			if err := app.Store.SaveState(app.Ctx, next); err != nil {
				return err
			}

			fmt.Printf("\n✓ Persona agregada: %s (%s)\n\n", person.Name, person.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&offDays, "off-days", "", "Comma-separated weekdays off (0=Sunday..6=Saturday)")
	cmd.Flags().StringVar(&mix, "mix", "", "Mix profile: WEEKDAY (Mon-Thu) or WEEKEND (Fri-Sun)")

	return cmd
}

// parseBaseSchedule builds a schedule that works every day except the
// listed off days.
func parseBaseSchedule(offDays string) (model.BaseSchedule, error) {
	var schedule model.BaseSchedule
	for i := range schedule {
		schedule[i] = model.DayWorking
	}

	if offDays == "" {
		return schedule, nil
	}

	for _, part := range strings.Split(offDays, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 0 || day > 6 {
			return schedule, fmt.Errorf("invalid weekday %q in off-days", part)
		}
		schedule[day] = model.DayOff
	}

	return schedule, nil
}

// ListPeopleCmd creates the listPeople command.
func ListPeopleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPeople",
		Short: "List all people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d people:\n\n", len(current.People))
			for _, p := range current.People {
				status := "active"
				if !p.Active {
					status = "inactive"
				}
				mixInfo := ""
				if p.MixProfile != model.MixNone {
					mixInfo = fmt.Sprintf(" [mix: %s]", p.MixProfile)
				}
				fmt.Printf("- %s (%s) - %s - %s%s\n", p.Name, p.ID, p.BaseShift, status, mixInfo)
			}
			fmt.Println()

			return nil
		},
	}
}
