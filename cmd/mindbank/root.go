package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/mindbank/internal/app"
	"github.com/baharkarakas/mindbank/internal/config"
	"github.com/baharkarakas/mindbank/internal/logger"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "mindbank",
	Short:         "Personal finance tracker",
	Long:          "MindBank computes your global financial position from your assets and a daily income model.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default configs/<env>.yaml)")
}

// bootstrap loads config, sets up logging and opens the app. The returned
// func releases everything.
func bootstrap(ctx context.Context) (*app.App, bool, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, false, nil, err
	}

	sentryEnabled, err := app.InitSentry(cfg)
	if err != nil {
		return nil, false, nil, err
	}

	log, logCloser := logger.New(logger.Options{
		Env:    cfg.Env,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Sentry: sentryEnabled,
	})
	slog.SetDefault(log)

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		_ = logCloser.Close()
		return nil, false, nil, err
	}
	cleanup := func() {
		a.Close()
		flushSentry(sentryEnabled)
		_ = logCloser.Close()
	}
	return a, sentryEnabled, cleanup, nil
}
