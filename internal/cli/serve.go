package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmsa/internal/metrics"
	"github.com/katalvlaran/lvmsa/internal/server"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve alignments over HTTP",
		Long: `Serve POST /align, GET /healthz and GET /metrics.

The scoring matrix and the default policies come from --config and the
global flags; each request may override end_gaps and traceback.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.resolve(cmd, nil)
			if err != nil {
				return err
			}
			log := logger(cmd, cfg)
			m, err := cfg.LoadMatrix()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(m, cfg, metrics.NewRecorder(), log).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", slog.String("addr", addr), slog.String("matrix", cfg.Matrix))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
