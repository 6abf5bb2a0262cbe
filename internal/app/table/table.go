package table

import (
	"sync"
)

// Record holds the last-known metrics for one live process
type Record struct {
	PID        int
	Owner      string
	Command    string
	CPUPercent float64
	MemoryMB   float64

	// PrevCPUTicks is the cumulative tick count observed on the previous
	// CPU-sampling cycle. Bookkeeping only, never displayed.
	PrevCPUTicks uint64
}

// Table is the shared process table. It is the single source of truth read
// by the display loop and written by both sampler loops, guarded by one
// mutex held only across map mutation.
type Table interface {
	Upsert(rec Record)
	UpsertUsage(pid int, memoryMB float64, owner, command string)
	Snapshot() []Record
	Reconcile(livePids map[int]struct{}) int
	PrevCPUTicks(pid int) uint64
	Len() int
}

// processTable implements the Table interface
type processTable struct {
	mu      sync.Mutex
	records map[int]*Record
	order   []int
}

// New creates an empty process table
func New() Table {
	return &processTable{
		records: make(map[int]*Record),
	}
}

// Upsert merges a full record into the table, creating it when the pid is
// new. Zero-valued Owner/Command fields keep their previous values so the
// CPU sampler cannot erase what the metadata sampler wrote.
func (t *processTable) Upsert(rec Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.records[rec.PID]
	if !ok {
		r := rec
		t.records[rec.PID] = &r
		t.order = append(t.order, rec.PID)

		return
	}

	if rec.Owner != "" {
		existing.Owner = rec.Owner
	}

	if rec.Command != "" {
		existing.Command = rec.Command
	}

	existing.CPUPercent = rec.CPUPercent
	existing.MemoryMB = rec.MemoryMB
	existing.PrevCPUTicks = rec.PrevCPUTicks
}

// UpsertUsage updates memory and metadata only, never the CPU fields
func (t *processTable) UpsertUsage(pid int, memoryMB float64, owner, command string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.records[pid]
	if !ok {
		t.records[pid] = &Record{
			PID:      pid,
			Owner:    owner,
			Command:  command,
			MemoryMB: memoryMB,
		}
		t.order = append(t.order, pid)

		return
	}

	existing.MemoryMB = memoryMB
	existing.Owner = owner
	existing.Command = command
}

// Snapshot returns a copy of all records in first-seen order, so callers can
// filter, sort, and render without holding the table lock.
func (t *processTable) Snapshot() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, 0, len(t.records))
	for _, pid := range t.order {
		out = append(out, *t.records[pid])
	}

	return out
}

// Reconcile removes every record whose pid is not in livePids and reports
// how many were dropped. Idempotent for a fixed live set.
func (t *processTable) Reconcile(livePids map[int]struct{}) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	kept := t.order[:0]

	for _, pid := range t.order {
		if _, live := livePids[pid]; live {
			kept = append(kept, pid)
			continue
		}

		delete(t.records, pid)
		removed++
	}

	t.order = kept

	return removed
}

// PrevCPUTicks returns the last cumulative tick count for pid, 0 when the
// pid has not been seen yet
func (t *processTable) PrevCPUTicks(pid int) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec, ok := t.records[pid]; ok {
		return rec.PrevCPUTicks
	}

	return 0
}

// Len returns the number of records currently in the table
func (t *processTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.records)
}
