package controls

import (
	"sync"
	"sync/atomic"
	"time"

	"procman/internal/config"
)

// Controls is the shared control surface observed by all monitoring loops.
// The boolean gates and the interval are independent atomics; the criteria
// share one small mutex. None of it is covered by the table lock.
type Controls interface {
	Activate() bool
	Deactivate()
	Active() bool

	SetPaused(paused bool)
	Paused() bool

	SetSortBy(criterion SortCriterion)
	SortBy() SortCriterion

	SetFilter(filter Filter)
	Filter() Filter

	SetIntervalSeconds(seconds int)
	Interval() time.Duration

	Done() <-chan struct{}
	Wait(d time.Duration) bool
	WaitQuantum() bool
}

// controls implements the Controls interface
type controls struct {
	active   atomic.Bool
	paused   atomic.Bool
	interval atomic.Int64 // seconds

	mu      sync.RWMutex
	sortBy  SortCriterion
	filter  Filter
	session chan struct{}
}

// New creates the control surface seeded from the configured defaults
func New(cfg *config.Config) Controls {
	c := &controls{
		sortBy:  SortCriterion(cfg.Monitor.SortBy),
		filter:  NoFilter,
		session: closedChan(),
	}
	c.interval.Store(int64(cfg.Monitor.Interval))

	return c
}

// Activate flips the surface into the active state and opens a fresh stop
// broadcast channel. Returns false when monitoring was already active.
func (c *controls) Activate() bool {
	if !c.active.CompareAndSwap(false, true) {
		return false
	}

	c.paused.Store(false)

	c.mu.Lock()
	c.session = make(chan struct{})
	c.mu.Unlock()

	return true
}

// Deactivate clears the active flag and broadcasts a wake-up so no loop
// sleeps out its interval before noticing
func (c *controls) Deactivate() {
	if !c.active.CompareAndSwap(true, false) {
		return
	}

	c.mu.Lock()
	close(c.session)
	c.mu.Unlock()
}

// Active reports whether monitoring is running
func (c *controls) Active() bool {
	return c.active.Load()
}

// SetPaused flips the pause gate; the loops keep running but skip work
func (c *controls) SetPaused(paused bool) {
	c.paused.Store(paused)
}

// Paused reports whether monitoring is paused
func (c *controls) Paused() bool {
	return c.paused.Load()
}

// SetSortBy updates the display ordering criterion
func (c *controls) SetSortBy(criterion SortCriterion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sortBy = criterion
}

// SortBy returns the current display ordering criterion
func (c *controls) SortBy() SortCriterion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sortBy
}

// SetFilter replaces the display filter
func (c *controls) SetFilter(filter Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = filter
}

// Filter returns the current display filter
func (c *controls) Filter() Filter {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter
}

// SetIntervalSeconds updates the sampling interval. Loops read it at the
// start of each cycle, so the change takes effect on the next tick.
func (c *controls) SetIntervalSeconds(seconds int) {
	c.interval.Store(int64(seconds))
}

// Interval returns the sampling interval
func (c *controls) Interval() time.Duration {
	return time.Duration(c.interval.Load()) * time.Second
}

// Done returns the current session's stop broadcast channel
func (c *controls) Done() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

// Wait sleeps for d unless the session is stopped first. Returns false when
// woken by the stop broadcast.
func (c *controls) Wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.Done():
		return false
	}
}

// WaitQuantum sleeps one pause-poll quantum, stop-interruptible
func (c *controls) WaitQuantum() bool {
	return c.Wait(config.PauseQuantum)
}

// closedChan returns an already-closed channel so Done never blocks before
// the first Activate
func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}
