package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/services"
)

// AddExchangeCmd creates the addExchange command with one subcommand per
// exchange kind.
func AddExchangeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addExchange",
		Short: "Register a peer-to-peer shift exchange (cover, double, swap)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cover <date> <covered_person_id> <covering_person_id> <shift>",
		Short: "One person covers another's shift",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExchange(app, services.ExchangeInput{
				Date:         args[0],
				Kind:         model.ExchangeCover,
				FromPersonID: args[1],
				ToPersonID:   args[2],
				Shift:        model.Shift(args[3]),
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "double <date> <person_id> <shift>",
		Short: "A person adds a shift beyond their base",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExchange(app, services.ExchangeInput{
				Date:     args[0],
				Kind:     model.ExchangeDouble,
				PersonID: args[1],
				Shift:    model.Shift(args[2]),
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "swap <date> <from_person_id> <from_shift> <to_person_id> <to_shift>",
		Short: "Two people trade shifts",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExchange(app, services.ExchangeInput{
				Date:         args[0],
				Kind:         model.ExchangeSwap,
				FromPersonID: args[1],
				FromShift:    model.Shift(args[2]),
				ToPersonID:   args[3],
				ToShift:      model.Shift(args[4]),
			})
		},
	})

	return cmd
}

func runExchange(app *AppContext, input services.ExchangeInput) error {
	outcome, err := services.RegisterExchange(app.Ctx, app.Store, app.Logger, input, app.Cfg.Actor)
	if err != nil {
		return err
	}

	if !outcome.OK {
		fmt.Printf("\n✗ Rechazado: %s\n\n", outcome.Message)
		return nil
	}

	fmt.Printf("\n✓ Operación registrada: %s\n\n", outcome.NewID)
	return nil
}
