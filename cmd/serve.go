package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/parcelworks/labelextract/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP extraction API",
		Long: `Starts an HTTP server exposing the extraction pipeline.

POST /api/extract with {"text": "<raw scan text>"} returns the extracted
{recipient_name, recipient_address} record.`,
		Example: `  # Start server on the configured address (HTTP_ADDR, default :8888)
  labelextract serve

  # Start server on a custom address
  labelextract serve --addr :3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			orch, cfg, err := buildOrchestrator(logger)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			handler := server.New(orch, logger)
			mux := http.NewServeMux()
			mux.HandleFunc("/api/extract", handler.HandleExtract)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("unable to write healthcheck", "err", err)
				}
			})

			srv := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("extraction API listening", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				logger.Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("server shutdown failed", "err", err)
					return err
				}
				logger.Info("server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from HTTP_ADDR)")

	return cmd
}
