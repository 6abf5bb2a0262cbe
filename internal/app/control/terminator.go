//go:generate mockgen -source=terminator.go -destination=terminator_mock.go -package=control
package control

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"

	"procman/internal/app/bus"
	"procman/internal/app/errors"
	"procman/internal/app/table"
	"procman/internal/config/logger"
)

// Terminator kills monitored processes, singly or in bulk by criterion.
// It works off the shared table, never off a fresh enumeration, so the user
// kills exactly what the display showed.
type Terminator interface {
	Kill(pid int) error
	KillByCPU(threshold float64) (int, error)
	KillByUser(owner string) (int, error)
}

// terminator implements the Terminator interface
type terminator struct {
	table table.Table
	bus   bus.Bus
	log   logger.Logger

	selfPID int
	signal  func(pid int) error
	exists  func(pid int) bool
}

// NewTerminator creates a Terminator over the shared table
func NewTerminator(tbl table.Table, b bus.Bus, log logger.Logger) Terminator {
	return &terminator{
		table:   tbl,
		bus:     b,
		log:     log,
		selfPID: os.Getpid(),
		signal:  sigkill,
		exists:  pidExists,
	}
}

func sigkill(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}

func pidExists(pid int) bool {
	if pid <= 0 || pid > math.MaxInt32 {
		return false
	}

	exists, err := process.PidExists(int32(pid)) // #nosec G115 -- PID range checked above
	return err == nil && exists
}

// Kill terminates a single process. The monitor's own pid and non-positive
// pids are refused.
func (t *terminator) Kill(pid int) error {
	if pid <= 0 {
		return errors.ErrInvalidPID
	}

	if pid == t.selfPID {
		return errors.ErrCannotKillSelf
	}

	if !t.exists(pid) {
		return errors.ErrProcessNotFound
	}

	if err := t.signal(pid); err != nil {
		return fmt.Errorf("failed to kill process %d: %w", pid, err)
	}

	t.log.Info().Msgf("Killed process %d", pid)
	t.bus.Publish(bus.Message{
		Type: bus.EventProcessKilled,
		Data: bus.ProcessKilled{PID: pid},
	})

	return nil
}

// KillByCPU terminates every tracked process using strictly more CPU than
// the threshold. Returns how many were killed.
func (t *terminator) KillByCPU(threshold float64) (int, error) {
	if threshold < 0 {
		return 0, errors.ErrInvalidFilterValue
	}

	value := strconv.FormatFloat(threshold, 'f', -1, 64)

	return t.killMatching("cpu", value, func(rec table.Record) bool {
		return rec.CPUPercent > threshold
	})
}

// KillByUser terminates every tracked process owned by the given user.
// Returns how many were killed.
func (t *terminator) KillByUser(owner string) (int, error) {
	if owner == "" {
		return 0, errors.ErrInvalidFilterValue
	}

	return t.killMatching("user", owner, func(rec table.Record) bool {
		return rec.Owner == owner
	})
}

func (t *terminator) killMatching(kind, value string, match func(table.Record) bool) (int, error) {
	killed := 0

	for _, rec := range t.table.Snapshot() {
		if rec.PID == t.selfPID || !match(rec) {
			continue
		}

		if err := t.signal(rec.PID); err != nil {
			// the process may have exited since the last sample
			t.log.Warn().Err(err).Msgf("Failed to kill process %d", rec.PID)
			continue
		}

		killed++
	}

	if killed == 0 {
		return 0, errors.ErrNoProcessMatched
	}

	t.log.Info().Msgf("Killed %d processes by %s %s", killed, kind, value)
	t.bus.Publish(bus.Message{
		Type: bus.EventProcessesKilled,
		Data: bus.ProcessesKilled{Kind: kind, Value: value, Count: killed},
	})

	return killed, nil
}
