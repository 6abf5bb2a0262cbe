package table

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	tbl := New()

	assert.NotNil(t, tbl)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Snapshot())
}

func Test_Upsert_NoDuplicatePids(t *testing.T) {
	tbl := New()

	tbl.Upsert(Record{PID: 1, Owner: "alice", CPUPercent: 5, PrevCPUTicks: 50})
	tbl.Upsert(Record{PID: 1, Owner: "alice", CPUPercent: 7, PrevCPUTicks: 120})
	tbl.Upsert(Record{PID: 2, Owner: "bob", CPUPercent: 1, PrevCPUTicks: 10})

	snap := tbl.Snapshot()
	require.Len(t, snap, 2)

	seen := make(map[int]bool)
	for _, rec := range snap {
		assert.False(t, seen[rec.PID], "pid %d appears twice", rec.PID)
		seen[rec.PID] = true
	}

	assert.Equal(t, 7.0, snap[0].CPUPercent)
	assert.Equal(t, uint64(120), snap[0].PrevCPUTicks)
}

func Test_Upsert_KeepsMetadataWhenEmpty(t *testing.T) {
	tbl := New()

	tbl.UpsertUsage(1, 12.5, "alice", "nginx")
	tbl.Upsert(Record{PID: 1, CPUPercent: 3.0, MemoryMB: 12.5, PrevCPUTicks: 40})

	snap := tbl.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "alice", snap[0].Owner)
	assert.Equal(t, "nginx", snap[0].Command)
	assert.Equal(t, 3.0, snap[0].CPUPercent)
}

func Test_UpsertUsage_NeverTouchesCPU(t *testing.T) {
	tbl := New()

	tbl.Upsert(Record{PID: 1, CPUPercent: 9.5, PrevCPUTicks: 77})
	tbl.UpsertUsage(1, 42.0, "root", "systemd")

	snap := tbl.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 9.5, snap[0].CPUPercent)
	assert.Equal(t, uint64(77), snap[0].PrevCPUTicks)
	assert.Equal(t, 42.0, snap[0].MemoryMB)
	assert.Equal(t, "root", snap[0].Owner)
}

func Test_Snapshot_IsACopy(t *testing.T) {
	tbl := New()
	tbl.Upsert(Record{PID: 1, CPUPercent: 1})

	snap := tbl.Snapshot()
	snap[0].CPUPercent = 99

	assert.Equal(t, 1.0, tbl.Snapshot()[0].CPUPercent)
}

func Test_Snapshot_FirstSeenOrder(t *testing.T) {
	tbl := New()

	tbl.Upsert(Record{PID: 30})
	tbl.Upsert(Record{PID: 10})
	tbl.Upsert(Record{PID: 20})
	tbl.Upsert(Record{PID: 10})

	snap := tbl.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, 30, snap[0].PID)
	assert.Equal(t, 10, snap[1].PID)
	assert.Equal(t, 20, snap[2].PID)
}

func Test_Reconcile(t *testing.T) {
	tbl := New()

	for pid := 1; pid <= 5; pid++ {
		tbl.Upsert(Record{PID: pid})
	}

	live := map[int]struct{}{1: {}, 3: {}, 5: {}}

	removed := tbl.Reconcile(live)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, tbl.Len())

	for _, rec := range tbl.Snapshot() {
		_, ok := live[rec.PID]
		assert.True(t, ok, "pid %d should have been reconciled away", rec.PID)
	}

	// idempotent: a second pass with the same live set removes nothing
	assert.Equal(t, 0, tbl.Reconcile(live))
	assert.Equal(t, 3, tbl.Len())
}

func Test_PrevCPUTicks(t *testing.T) {
	tbl := New()

	assert.Equal(t, uint64(0), tbl.PrevCPUTicks(42))

	tbl.Upsert(Record{PID: 42, PrevCPUTicks: 1234})
	assert.Equal(t, uint64(1234), tbl.PrevCPUTicks(42))
}

func Test_ConcurrentWriters(t *testing.T) {
	tbl := New()

	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			for i := 0; i < 500; i++ {
				pid := i % 50
				if w%2 == 0 {
					tbl.Upsert(Record{PID: pid, CPUPercent: float64(i), PrevCPUTicks: uint64(i)})
				} else {
					tbl.UpsertUsage(pid, float64(i), "user", "cmd")
				}

				if i%100 == 0 {
					tbl.Snapshot()
				}
			}
		}(w)
	}

	wg.Wait()

	assert.Equal(t, 50, tbl.Len())
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
