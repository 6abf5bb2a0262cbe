package sampler

import (
	"procman/internal/app/controls"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/config/logger"
)

// CPUSampler maintains per-process CPU utilisation in the shared table. Each
// cycle it reads the aggregate tick counter and every live process's tick
// counter, derives utilisation from the deltas against the previous cycle,
// and reconciles the table against the live pid set so exited processes are
// dropped.
type CPUSampler struct {
	provider snapshot.Provider
	table    table.Table
	ctrl     controls.Controls
	log      logger.Logger
	loop     *Loop

	cores     int
	totalPrev uint64
}

func NewCPUSampler(
	provider snapshot.Provider,
	tbl table.Table,
	ctrl controls.Controls,
	log logger.Logger,
) *CPUSampler {
	return &CPUSampler{
		provider: provider,
		table:    tbl,
		ctrl:     ctrl,
		log:      log,
		loop:     NewLoop("cpu sampler", ctrl, log),
	}
}

// Run drives the sampler until the control surface deactivates. It is meant
// to be called on its own goroutine.
func (s *CPUSampler) Run() {
	s.cores = s.provider.CoreCount()
	s.totalPrev = s.provider.TotalSystemCPUTicks()

	s.loop.Run(s.sample)
}

// State exposes the underlying loop state
func (s *CPUSampler) State() string {
	return s.loop.State()
}

func (s *CPUSampler) sample() {
	totalNow := s.provider.TotalSystemCPUTicks()

	var totalDelta uint64
	if totalNow > s.totalPrev {
		totalDelta = totalNow - s.totalPrev
	}

	procs := s.provider.ListProcesses()
	live := make(map[int]struct{}, len(procs))

	for _, proc := range procs {
		live[proc.PID] = struct{}{}

		ticks := s.provider.ProcessCPUTicks(proc.PID)
		prev := s.table.PrevCPUTicks(proc.PID)

		// The provider reports zero when the per-process read fails,
		// typically because the process exited mid-cycle. Keep the
		// previous figures and let reconciliation catch up.
		if ticks == 0 && prev > 0 {
			continue
		}

		var percent float64
		if totalDelta > 0 && ticks > prev {
			percent = float64(ticks-prev) / float64(totalDelta) * float64(s.cores) * 100
		}

		s.table.Upsert(table.Record{
			PID:          proc.PID,
			Owner:        proc.Owner,
			Command:      proc.Command,
			CPUPercent:   percent,
			MemoryMB:     proc.MemoryMB,
			PrevCPUTicks: ticks,
		})
	}

	if removed := s.table.Reconcile(live); removed > 0 {
		s.log.Debug().Msgf("SAMPLER: dropped %d exited processes", removed)
	}

	s.totalPrev = totalNow
}
