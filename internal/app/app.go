package app

import (
	"context"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"procman/internal/app/bus"
	"procman/internal/app/cli"
	"procman/internal/app/eventlog"
	"procman/internal/app/watcher"
	"procman/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli      cli.CLI
	recorder eventlog.Recorder
	watcher  watcher.Watcher
	bus      bus.Bus
	log      logger.Logger
	done     chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(
	c cli.CLI,
	recorder eventlog.Recorder,
	w watcher.Watcher,
	b bus.Bus,
	log logger.Logger,
) *App {
	return &App{
		cli:      c,
		recorder: recorder,
		watcher:  w,
		bus:      b,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Run executes the application
func (a *App) Run() {
	exitCode := a.execute()

	a.shutdown()
	close(a.done)

	os.Exit(exitCode)
}

// shutdown flushes the event trail before the process exits
func (a *App) shutdown() {
	a.watcher.Close()
	a.bus.Close()

	if err := a.recorder.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Failed to close event log")
	}

	sentry.Flush(2 * time.Second)
}

// execute runs the CLI and returns an exit code
func (a *App) execute() int {
	if err := a.cli.Run(os.Args[1:]); err != nil {
		return 1
	}

	return 0
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := app.recorder.Start(); err != nil {
				return err
			}

			// hot reload is best effort
			if err := app.watcher.Start(); err != nil {
				app.log.Warn().Err(err).Msg("Config watching disabled")
			}

			go app.Run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			app.shutdown()

			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
