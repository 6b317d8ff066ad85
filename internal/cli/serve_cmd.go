package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/alexanderramin/skinadvisor/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve advisor sessions over HTTP",
		Long: `Serve the session and action API under /api. Each POST /api/sessions
starts an isolated profile; actions are posted to
/api/sessions/{id}/actions as {"action": ..., "args": {...}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}
			return a.serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to SKINADVISOR_ADDR or :8080)")
	return cmd
}

// serve runs the HTTP API on ln until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	logger := a.logger()
	srv := &http.Server{
		Handler:      httpapi.NewRouter(a.Sessions, a.Catalog, a.Logger),
		ReadTimeout:  a.Config.ReadTimeout(),
		WriteTimeout: a.Config.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
