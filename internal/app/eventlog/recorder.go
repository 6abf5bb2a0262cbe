package eventlog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"procman/internal/app/bus"
	"procman/internal/app/errors"
	"procman/internal/config"
)

// writeQueueDepth buffers formatted lines between the bus drain and the
// file writer, so a slow disk never backs up into the publisher
const writeQueueDepth = 1024

// timestampFormat matches the human-readable event log line prefix
const timestampFormat = "2006-01-02 15:04:05"

// Recorder appends human-readable monitoring events to a log file. It is
// the audit trail of user actions, separate from the structured debug log.
type Recorder interface {
	Start() error
	Close() error
	Retarget(path string) error
	Path() string
}

// recorder implements the Recorder interface
type recorder struct {
	path string
	bus  bus.Bus

	mu         sync.RWMutex
	file       *os.File
	cancel     context.CancelFunc
	writeQueue chan string
	writerDone chan struct{}
	started    bool
}

// New creates an event log recorder writing to the configured file
func New(cfg *config.Config, b bus.Bus) Recorder {
	return &recorder{
		path:       cfg.EventLog.File,
		bus:        b,
		writeQueue: make(chan string, writeQueueDepth),
		writerDone: make(chan struct{}),
	}
}

// Start opens the file and begins draining bus events into it
func (r *recorder) Start() error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 -- path comes from config
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFailedToOpenEventLog, err)
	}

	r.mu.Lock()
	r.file = file
	r.started = true
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	events := r.bus.Subscribe(ctx)

	go r.drain(events)
	go r.writeLoop()

	return nil
}

// Close stops the recorder and flushes the file
func (r *recorder) Close() error {
	r.mu.Lock()
	started := r.started
	r.started = false
	r.mu.Unlock()

	if !started {
		return nil
	}

	r.cancel()
	close(r.writeQueue)
	<-r.writerDone

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil

	return err
}

// Retarget switches the event log to a new file. Events recorded from here
// on land in the new file; the previous file is closed.
func (r *recorder) Retarget(path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 -- path comes from the log command
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFailedToOpenEventLog, err)
	}

	r.mu.Lock()

	if !r.started {
		// not draining yet; Start will open the file itself
		r.path = path
		r.mu.Unlock()

		return file.Close()
	}

	old := r.file
	r.file = file
	r.path = path
	r.mu.Unlock()

	if old != nil {
		return old.Close()
	}

	return nil
}

// Path returns the event log file location
func (r *recorder) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.path
}

func (r *recorder) drain(events <-chan bus.Message) {
	for msg := range events {
		line, ok := formatMessage(msg)
		if !ok {
			continue
		}

		select {
		case r.writeQueue <- line:
		default:
		}
	}
}

func (r *recorder) writeLoop() {
	defer close(r.writerDone)

	for line := range r.writeQueue {
		r.writeLine(line)
	}
}

func (r *recorder) writeLine(line string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.file == nil {
		return
	}

	fmt.Fprintln(r.file, line)
	_ = r.file.Sync()
}

// formatMessage turns a bus message into one event log line
func formatMessage(msg bus.Message) (string, bool) {
	level := "INFO"
	text := ""

	switch data := msg.Data.(type) {
	case bus.MonitorStarted:
		text = fmt.Sprintf("User started monitoring with sorting by %s (interval %ds).", data.SortBy, data.Interval)
	case bus.SortChanged:
		text = fmt.Sprintf("User changed sorting criterion to %s.", data.SortBy)
	case bus.FilterChanged:
		if data.Kind == "none" {
			text = "User cleared the display filter."
		} else {
			text = fmt.Sprintf("User applied filter %s %s.", data.Kind, data.Value)
		}
	case bus.IntervalChanged:
		text = fmt.Sprintf("User changed update interval to %d seconds.", data.Seconds)
	case bus.ProcessKilled:
		text = fmt.Sprintf("User terminated process PID %d.", data.PID)
	case bus.ProcessesKilled:
		text = fmt.Sprintf("User terminated %d processes by %s %s.", data.Count, data.Kind, data.Value)
	case bus.CommandRejected:
		level = "WARNING"
		text = fmt.Sprintf("Rejected command %q: %s.", data.Command, data.Reason)
	default:
		switch msg.Type {
		case bus.EventMonitorStopped:
			text = "User stopped monitoring."
		case bus.EventMonitorPaused:
			text = "User paused monitoring."
		case bus.EventMonitorResumed:
			text = "User resumed monitoring."
		default:
			return "", false
		}
	}

	return fmt.Sprintf("[%s] [%s] %s", msg.Timestamp.Format(timestampFormat), level, text), true
}
