package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// AuditLogCmd creates the auditLog command.
func AuditLogCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auditLog [limit]",
		Short: "Show the audit log, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := 20
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("limit must be a positive number, got %q", args[0])
				}
				limit = n
			}

			current, err := app.Store.LoadState(app.Ctx)
			if err != nil {
				return err
			}

			events := current.AuditLog
			if len(events) > limit {
				events = events[:limit]
			}

			fmt.Printf("\n%d of %d audit events:\n\n", len(events), len(current.AuditLog))
			for _, e := range events {
				line := fmt.Sprintf("- %s  %s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action)
				if e.Target != "" {
					line += "  " + e.Target
				}
				if e.Change != "" {
					line += fmt.Sprintf("  (%s)", e.Change)
				}
				fmt.Println(line)
			}
			fmt.Println()

			return nil
		},
	}
}
