package main

import (
	"fmt"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"procman/internal/app"
	"procman/internal/config"
	"procman/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	initSentry(cfg)

	createApp(cfg).Run()
}

// initSentry enables crash reporting when a DSN is configured
func initSentry(cfg *config.Config) {
	if cfg.Sentry.DSN == "" {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.Sentry.DSN,
		Release: "procman@" + config.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sentry init failed: %v\n", err)
	}
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(logger.NewLogger),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
