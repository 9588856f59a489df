package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/centroops/guardia/internal/handler"
)

// ServeCmd creates the serve command, exposing the read-only query
// surface over HTTP until interrupted.
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only query API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := handler.NewHandler(app.Store, app.Logger)
			h.RegisterRoutes()

			srv := &http.Server{
				Addr:         fmt.Sprintf(":%d", app.Cfg.ServerPort),
				Handler:      h.Mux,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("Starting server", zap.Int("port", app.Cfg.ServerPort))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-quit:
			}

			app.Logger.Info("Shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shut down server: %w", err)
			}

			app.Logger.Info("Server stopped")
			return nil
		},
	}
}
