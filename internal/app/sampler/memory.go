package sampler

import (
	"procman/internal/app/controls"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/config/logger"
)

// MemorySampler refreshes resident-set sizes and ownership metadata in the
// shared table. It never touches CPU figures or the pid set, so it can run on
// a different cadence from the CPU sampler without the two racing.
type MemorySampler struct {
	provider snapshot.Provider
	table    table.Table
	ctrl     controls.Controls
	log      logger.Logger
	loop     *Loop
}

func NewMemorySampler(
	provider snapshot.Provider,
	tbl table.Table,
	ctrl controls.Controls,
	log logger.Logger,
) *MemorySampler {
	return &MemorySampler{
		provider: provider,
		table:    tbl,
		ctrl:     ctrl,
		log:      log,
		loop:     NewLoop("memory sampler", ctrl, log),
	}
}

// Run drives the sampler until the control surface deactivates. It is meant
// to be called on its own goroutine.
func (s *MemorySampler) Run() {
	s.loop.Run(s.sample)
}

// State exposes the underlying loop state
func (s *MemorySampler) State() string {
	return s.loop.State()
}

func (s *MemorySampler) sample() {
	for _, proc := range s.provider.ListProcesses() {
		s.table.UpsertUsage(proc.PID, proc.MemoryMB, proc.Owner, proc.Command)
	}
}
