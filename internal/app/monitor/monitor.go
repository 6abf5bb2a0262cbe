//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"sync"

	"procman/internal/app/bus"
	"procman/internal/app/controls"
	"procman/internal/app/display"
	"procman/internal/app/errors"
	"procman/internal/app/sampler"
	"procman/internal/app/table"
	"procman/internal/config/logger"
)

// Engine is the facade over the monitoring loops and the control surface.
// All user input crosses this boundary, is validated here, and leaves the
// running loops untouched when invalid.
type Engine interface {
	Start(sortBy string) error
	Stop() error
	Pause() error
	Resume() error
	Active() bool
	Paused() bool

	SetSort(value string) error
	SetFilter(kind, value string) error
	SetInterval(seconds int) error

	ListSnapshot() []table.Record
}

// engine implements the Engine interface
type engine struct {
	table   table.Table
	ctrl    controls.Controls
	cpu     *sampler.CPUSampler
	memory  *sampler.MemorySampler
	display *display.Display
	bus     bus.Bus
	log     logger.Logger

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewEngine creates the engine over the shared table and control surface
func NewEngine(
	tbl table.Table,
	ctrl controls.Controls,
	cpu *sampler.CPUSampler,
	memory *sampler.MemorySampler,
	disp *display.Display,
	b bus.Bus,
	log logger.Logger,
) Engine {
	return &engine{
		table:   tbl,
		ctrl:    ctrl,
		cpu:     cpu,
		memory:  memory,
		display: disp,
		bus:     b,
		log:     log,
	}
}

// Start spawns the two sampler loops and the display loop. An optional sort
// criterion overrides the configured ordering for the session.
func (e *engine) Start(sortBy string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sortBy != "" {
		criterion, err := controls.ParseSort(sortBy)
		if err != nil {
			return err
		}

		e.ctrl.SetSortBy(criterion)
	}

	if !e.ctrl.Activate() {
		return errors.ErrMonitorAlreadyActive
	}

	for _, run := range []func(){e.cpu.Run, e.memory.Run, e.display.Run} {
		e.wg.Add(1)

		go func(run func()) {
			defer e.wg.Done()
			run()
		}(run)
	}

	e.log.Info().Msg("Monitoring started")
	e.bus.Publish(bus.Message{
		Type: bus.EventMonitorStarted,
		Data: bus.MonitorStarted{
			SortBy:   string(e.ctrl.SortBy()),
			Interval: int(e.ctrl.Interval().Seconds()),
		},
	})

	return nil
}

// Stop broadcasts the wake-up and joins all three loops before returning.
// Latency is bounded by the pause quantum, not the sampling interval.
func (e *engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ctrl.Active() {
		return errors.ErrMonitorNotActive
	}

	e.ctrl.Deactivate()
	e.wg.Wait()

	e.log.Info().Msg("Monitoring stopped")
	e.bus.Publish(bus.Message{Type: bus.EventMonitorStopped})

	return nil
}

// Pause gates the loops without stopping them
func (e *engine) Pause() error {
	if !e.ctrl.Active() {
		return errors.ErrMonitorNotActive
	}

	if e.ctrl.Paused() {
		return errors.ErrMonitorAlreadyPaused
	}

	e.ctrl.SetPaused(true)
	e.bus.Publish(bus.Message{Type: bus.EventMonitorPaused})

	return nil
}

// Resume lifts the pause gate
func (e *engine) Resume() error {
	if !e.ctrl.Active() {
		return errors.ErrMonitorNotActive
	}

	if !e.ctrl.Paused() {
		return errors.ErrMonitorNotPaused
	}

	e.ctrl.SetPaused(false)
	e.bus.Publish(bus.Message{Type: bus.EventMonitorResumed})

	return nil
}

// Active reports whether the loops are running
func (e *engine) Active() bool {
	return e.ctrl.Active()
}

// Paused reports whether the loops are gated
func (e *engine) Paused() bool {
	return e.ctrl.Paused()
}

// SetSort validates and applies a new display ordering
func (e *engine) SetSort(value string) error {
	criterion, err := controls.ParseSort(value)
	if err != nil {
		return err
	}

	e.ctrl.SetSortBy(criterion)
	e.bus.Publish(bus.Message{
		Type: bus.EventSortChanged,
		Data: bus.SortChanged{SortBy: string(criterion)},
	})

	return nil
}

// SetFilter validates and applies a new display filter. Kind "none" clears
// the filter; on a rejected value the previous filter stays in force.
func (e *engine) SetFilter(kind, value string) error {
	filter, err := controls.ParseFilter(controls.FilterKind(kind), value)
	if err != nil {
		return err
	}

	e.ctrl.SetFilter(filter)
	e.bus.Publish(bus.Message{
		Type: bus.EventFilterChanged,
		Data: bus.FilterChanged{Kind: string(filter.Kind), Value: filter.Value},
	})

	return nil
}

// SetInterval validates and applies a new sampling interval. Running loops
// pick it up on their next cycle.
func (e *engine) SetInterval(seconds int) error {
	if seconds <= 0 {
		return errors.ErrInvalidInterval
	}

	e.ctrl.SetIntervalSeconds(seconds)
	e.bus.Publish(bus.Message{
		Type: bus.EventIntervalChanged,
		Data: bus.IntervalChanged{Seconds: seconds},
	})

	return nil
}

// ListSnapshot returns a one-shot filtered and ordered listing, independent
// of the display loop
func (e *engine) ListSnapshot() []table.Record {
	return display.Arrange(e.table.Snapshot(), e.ctrl.Filter(), e.ctrl.SortBy(), 0)
}
