package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/centroops/guardia/cmd/cli/commands"
	"github.com/centroops/guardia/internal/config"
	"github.com/centroops/guardia/pkg/postgres"
	"github.com/centroops/guardia/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "guardia",
		Short: "Guardia CLI - Manage two-shift staffing, incidents and exchanges",
		Long: `A CLI tool for a two-shift (DAY/NIGHT) continuous operation: base
schedules, incidents, peer shift exchanges, coverage minimums and slot
responsibility.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.CoverageCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterIncidentCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveIncidentCmd(appRef()))
	rootCmd.AddCommand(commands.IncidentDatesCmd(appRef()))
	rootCmd.AddCommand(commands.AddExchangeCmd(appRef()))
	rootCmd.AddCommand(commands.ResponsibilityCmd(appRef()))
	rootCmd.AddCommand(commands.AddPersonCmd(appRef()))
	rootCmd.AddCommand(commands.ListPeopleCmd(appRef()))
	rootCmd.AddCommand(commands.SetPlanCmd(appRef()))
	rootCmd.AddCommand(commands.SetRuleCmd(appRef()))
	rootCmd.AddCommand(commands.SyncHolidaysCmd(appRef()))
	rootCmd.AddCommand(commands.AuditLogCmd(appRef()))
	rootCmd.AddCommand(commands.ExportCmd(appRef()))
	rootCmd.AddCommand(commands.ImportCmd(appRef()))
	rootCmd.AddCommand(commands.ServeCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns a pointer that is filled in by initApp before any
// command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config and the postgres-backed state store.
func initApp() error {
	ref := appRef()
	ref.Ctx = context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ref.Logger = logger

	logger.Info("Starting application", zap.String("environment", env))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ref.Cfg = cfg
	logger.Debug("Configuration loaded successfully")

	logger.Info("Connecting to database")
	store, err := postgres.NewDB(ref.Ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.RunMigrations(ref.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	ref.Store = store
	logger.Info("Database initialized successfully")

	return nil
}
