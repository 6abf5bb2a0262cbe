package sampler

import (
	"context"

	"github.com/looplab/fsm"

	"procman/internal/app/controls"
	"procman/internal/config/logger"
)

// Loop lifecycle states
const (
	StateWaiting  = "waiting_to_run"
	StateSampling = "sampling"
	StateStopped  = "stopped"
)

// Loop lifecycle events
const (
	eventSample = "sample"
	eventRest   = "rest"
	eventStop   = "stop"
)

// loop is the shared wait-then-work scaffolding for the sampling and display
// loops. It sleeps for the configured interval, polls pause state at the
// quantum, and exits promptly on the stop broadcast. The body runs once per
// cycle.
type Loop struct {
	name string
	ctrl controls.Controls
	log  logger.Logger
	fsm  *fsm.FSM
}

func NewLoop(name string, ctrl controls.Controls, log logger.Logger) *Loop {
	l := &Loop{
		name: name,
		ctrl: ctrl,
		log:  log,
	}

	l.fsm = fsm.NewFSM(
		StateWaiting,
		fsm.Events{
			{Name: eventSample, Src: []string{StateWaiting}, Dst: StateSampling},
			{Name: eventRest, Src: []string{StateSampling}, Dst: StateWaiting},
			{Name: eventStop, Src: []string{StateWaiting, StateSampling}, Dst: StateStopped},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				log.Debug().Msgf("LOOP %s: %s -> %s", name, e.Src, e.Dst)
			},
		},
	)

	return l
}

// run drives the loop until the control surface deactivates. The interval is
// re-read every cycle so changes apply on the next tick, and both sleeps are
// interruptible by the stop broadcast.
func (l *Loop) Run(body func()) {
	ctx := context.Background()

	l.log.Info().Msgf("%s loop started", l.name)

	for l.ctrl.Active() {
		if l.ctrl.Paused() {
			l.ctrl.WaitQuantum()
			continue
		}

		if !l.ctrl.Wait(l.ctrl.Interval()) {
			break
		}

		if !l.ctrl.Active() {
			break
		}

		if l.ctrl.Paused() {
			continue
		}

		_ = l.fsm.Event(ctx, eventSample)
		body()
		_ = l.fsm.Event(ctx, eventRest)
	}

	_ = l.fsm.Event(ctx, eventStop)

	l.log.Info().Msgf("%s loop stopped", l.name)
}

// State exposes the loop's lifecycle state
func (l *Loop) State() string {
	return l.fsm.Current()
}
