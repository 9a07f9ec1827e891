package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard and JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, sentryEnabled, cleanup, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	h, err := a.Handler(sentryEnabled)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.Cfg.HTTP.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server starting", "port", a.Cfg.HTTP.Port, "env", a.Cfg.Env, "storage", a.Cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.Log.Error("server", "err", err)
			return err
		}
	case <-ctx.Done():
	}

	a.Log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func flushSentry(enabled bool) {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}
