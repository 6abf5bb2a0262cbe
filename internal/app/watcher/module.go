package watcher

import (
	"go.uber.org/fx"

	"procman/internal/app/monitor"
	"procman/internal/config"
	"procman/internal/config/logger"
)

// Module provides the watcher and its dependencies
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, engine monitor.Engine, log logger.Logger) (Watcher, error) {
		return NewWatcher(config.FileName, cfg, engine, log)
	}),
)
