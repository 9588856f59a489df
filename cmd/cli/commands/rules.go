package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// SetRuleCmd creates the setRule command for coverage minimums.
func SetRuleCmd(app *AppContext) *cobra.Command {
	var shift string
	var date string
	var weekday int
	var label string

	cmd := &cobra.Command{
		Use:   "setRule <scope> <required>",
		Short: "Configure a coverage minimum (scope: GLOBAL, SHIFT, DATE, WEEKDAY)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := model.RuleScope(args[0])
			required, err := strconv.Atoi(args[1])
			if err != nil || required < 0 {
				return fmt.Errorf("required must be a non-negative number, got %q", args[1])
			}

			rule := model.CoverageRule{
				ID:       uuid.New().String(),
				Scope:    scope,
				Required: required,
				Label:    label,
			}

			switch scope {
			case model.ScopeGlobal:
			case model.ScopeShift:
				if !model.Shift(shift).IsValid() {
					return fmt.Errorf("--shift is required for SHIFT scope")
				}
				rule.Shift = model.Shift(shift)
			case model.ScopeDate:
				if date == "" {
					return fmt.Errorf("--date is required for DATE scope")
				}
				rule.Date = date
				if shift != "" {
					rule.Shift = model.Shift(shift)
				}
			case model.ScopeWeekday:
				if weekday < 0 || weekday > 6 {
					return fmt.Errorf("--weekday (0=Sunday..6=Saturday) is required for WEEKDAY scope")
				}
				rule.Weekday = time.Weekday(weekday)
				if shift != "" {
					rule.Shift = model.Shift(shift)
				}
			default:
				return fmt.Errorf("scope must be GLOBAL, SHIFT, DATE or WEEKDAY, got %q", args[0])
			}

			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			next := state.UpsertCoverageRule(current, rule, app.Cfg.Actor)
			if err := app.Store.SaveState(app.Ctx, next); err != nil {
				return err
			}

			fmt.Printf("\n✓ Regla registrada: %s (%s, mínimo %d)\n\n", rule.ID, rule.Scope, rule.Required)
			return nil
		},
	}

	cmd.Flags().StringVar(&shift, "shift", "", "Shift (DAY or NIGHT)")
	cmd.Flags().StringVar(&date, "date", "", "Date for DATE scope")
	cmd.Flags().IntVar(&weekday, "weekday", -1, "Weekday for WEEKDAY scope (0=Sunday..6=Saturday)")
	cmd.Flags().StringVar(&label, "label", "", "Rule label")

	return cmd
}
