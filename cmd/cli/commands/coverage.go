package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/services"
)

// CoverageCmd creates the coverage command.
func CoverageCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <date>",
		Short: "Show per-shift coverage and deficit for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]

			report, err := services.CoverageReport(app.Ctx, app.Store, app.Logger, date)
			if err != nil {
				return err
			}

			fmt.Printf("\nCoverage for %s\n\n", report.Date)
			fmt.Printf("  Nominal:        DAY=%d NIGHT=%d\n", report.Coverage.Day, report.Coverage.Night)
			fmt.Printf("  With exchanges: DAY=%d NIGHT=%d\n\n", report.WithExchanges.Day, report.WithExchanges.Night)

			fmt.Printf("  DAY:   required %d, actual %d, deficit %d\n",
				report.Deficit.Day.Required, report.Deficit.Day.Actual, report.Deficit.Day.Deficit)
			fmt.Printf("  NIGHT: required %d, actual %d, deficit %d\n",
				report.Deficit.Night.Required, report.Deficit.Night.Actual, report.Deficit.Night.Deficit)

			if report.Deficit.HasRisk {
				fmt.Println("\n  ⚠ Staffing below configured minimums")
			} else {
				fmt.Println("\n  ✓ Staffing meets configured minimums")
			}
			fmt.Println()

			return nil
		},
	}
}
