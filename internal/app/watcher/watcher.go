package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"procman/internal/app/monitor"
	"procman/internal/config"
	"procman/internal/config/logger"
)

// Watcher hot-reloads monitor settings when the config file changes on disk.
// Changes go through the same validated engine setters as interactive
// commands, so a bad file never disturbs the running loops.
type Watcher interface {
	Start() error
	Close()
}

// configWatcher implements the Watcher interface
type configWatcher struct {
	path      string
	engine    monitor.Engine
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	log       logger.Logger

	applied config.Config
}

// NewWatcher creates a watcher over the given config file path
func NewWatcher(path string, cfg *config.Config, engine monitor.Engine, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	w := &configWatcher{
		path:      abs,
		engine:    engine,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
		applied:   *cfg,
	}
	w.debouncer = NewDebouncer(config.WatchDebounce, w.reload)

	return w, nil
}

// Start begins watching the config file's directory. Editors replace files
// on save, so watching the file itself would lose the watch on the first
// write.
func (w *configWatcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()

	w.log.Info().Msgf("Watching %s for changes", w.path)

	return nil
}

// Close stops the watcher and releases resources
func (w *configWatcher) Close() {
	w.debouncer.Stop()
	w.fsWatcher.Close()
}

// processEvents routes fsnotify events for the config file to the debouncer
func (w *configWatcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if isRelevantEvent(event) && sameFile(event.Name, w.path) {
				w.debouncer.Trigger()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// reload re-reads the config file and applies changed monitor settings
func (w *configWatcher) reload() {
	cfg, err := config.LoadFile(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("Ignoring config change")
		return
	}

	w.apply(cfg)
}

func (w *configWatcher) apply(cfg *config.Config) {
	if cfg.Monitor.Interval != w.applied.Monitor.Interval {
		if err := w.engine.SetInterval(cfg.Monitor.Interval); err != nil {
			w.log.Warn().Err(err).Msg("Rejected reloaded interval")
		} else {
			w.applied.Monitor.Interval = cfg.Monitor.Interval
			w.log.Info().Msgf("Interval reloaded: %ds", cfg.Monitor.Interval)
		}
	}

	if cfg.Monitor.SortBy != w.applied.Monitor.SortBy {
		if err := w.engine.SetSort(cfg.Monitor.SortBy); err != nil {
			w.log.Warn().Err(err).Msg("Rejected reloaded sort criterion")
		} else {
			w.applied.Monitor.SortBy = cfg.Monitor.SortBy
			w.log.Info().Msgf("Sort criterion reloaded: %s", cfg.Monitor.SortBy)
		}
	}
}

// isRelevantEvent returns true if the event can change the file's content
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}

func sameFile(name, path string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}

	return abs == path
}
