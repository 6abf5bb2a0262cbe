package sampler

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"procman/internal/app/controls"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/config"
	"procman/internal/config/logger"
)

func testLogger() logger.Logger {
	return logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)
}

func snapshotByPID(tbl table.Table) map[int]table.Record {
	byPID := make(map[int]table.Record)
	for _, rec := range tbl.Snapshot() {
		byPID[rec.PID] = rec
	}

	return byPID
}

func Test_CPUSampler_Sample(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 1
	s.totalPrev = 1000

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(2000))
	provider.EXPECT().ListProcesses().Return([]snapshot.ProcessInfo{
		{PID: 1, Owner: "root", Command: "init", MemoryMB: 4},
		{PID: 2, Owner: "alice", Command: "bash", MemoryMB: 8},
	})
	provider.EXPECT().ProcessCPUTicks(1).Return(uint64(50))
	provider.EXPECT().ProcessCPUTicks(2).Return(uint64(10))

	s.sample()

	byPID := snapshotByPID(tbl)
	require.Len(t, byPID, 2)

	assert.InDelta(t, 5.0, byPID[1].CPUPercent, 0.0001)
	assert.InDelta(t, 1.0, byPID[2].CPUPercent, 0.0001)
	assert.Equal(t, "root", byPID[1].Owner)
	assert.Equal(t, "bash", byPID[2].Command)
	assert.InDelta(t, 8.0, byPID[2].MemoryMB, 0.0001)
	assert.Equal(t, uint64(2000), s.totalPrev)
}

func Test_CPUSampler_Sample_DeltaAgainstPreviousCycle(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 2
	s.totalPrev = 1000

	procs := []snapshot.ProcessInfo{{PID: 7, Owner: "root", Command: "kworker"}}

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(1500))
	provider.EXPECT().ListProcesses().Return(procs)
	provider.EXPECT().ProcessCPUTicks(7).Return(uint64(200))
	s.sample()

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(2500))
	provider.EXPECT().ListProcesses().Return(procs)
	provider.EXPECT().ProcessCPUTicks(7).Return(uint64(300))
	s.sample()

	// second cycle: (300-200)/1000 * 2 cores * 100
	byPID := snapshotByPID(tbl)
	assert.InDelta(t, 20.0, byPID[7].CPUPercent, 0.0001)
	assert.Equal(t, uint64(300), byPID[7].PrevCPUTicks)
}

func Test_CPUSampler_Sample_ZeroTotalDelta(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 4
	s.totalPrev = 1000

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(1000))
	provider.EXPECT().ListProcesses().Return([]snapshot.ProcessInfo{
		{PID: 1, Owner: "root", Command: "init"},
	})
	provider.EXPECT().ProcessCPUTicks(1).Return(uint64(9999))

	s.sample()

	byPID := snapshotByPID(tbl)
	assert.Zero(t, byPID[1].CPUPercent)
}

func Test_CPUSampler_Sample_ReconcilesExitedProcesses(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 1
	s.totalPrev = 0

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(1000))
	provider.EXPECT().ListProcesses().Return([]snapshot.ProcessInfo{
		{PID: 1, Owner: "root", Command: "init"},
		{PID: 2, Owner: "alice", Command: "bash"},
	})
	provider.EXPECT().ProcessCPUTicks(gomock.Any()).Return(uint64(10)).Times(2)
	s.sample()

	require.Equal(t, 2, tbl.Len())

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(2000))
	provider.EXPECT().ListProcesses().Return([]snapshot.ProcessInfo{
		{PID: 1, Owner: "root", Command: "init"},
	})
	provider.EXPECT().ProcessCPUTicks(1).Return(uint64(20))
	s.sample()

	assert.Equal(t, 1, tbl.Len())
	_, present := snapshotByPID(tbl)[2]
	assert.False(t, present)
}

func Test_CPUSampler_Sample_SkipsFailedTickRead(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 1
	s.totalPrev = 0

	procs := []snapshot.ProcessInfo{{PID: 3, Owner: "bob", Command: "vim"}}

	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(1000))
	provider.EXPECT().ListProcesses().Return(procs)
	provider.EXPECT().ProcessCPUTicks(3).Return(uint64(100))
	s.sample()

	before := snapshotByPID(tbl)[3]

	// read failure reported as zero ticks; the record keeps its last figures
	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(2000))
	provider.EXPECT().ListProcesses().Return(procs)
	provider.EXPECT().ProcessCPUTicks(3).Return(uint64(0))
	s.sample()

	after := snapshotByPID(tbl)[3]
	assert.Equal(t, before.CPUPercent, after.CPUPercent)
	assert.Equal(t, uint64(100), after.PrevCPUTicks)
	assert.Equal(t, 1, tbl.Len())
}

func Test_CPUSampler_Convergence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	s := NewCPUSampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())
	s.cores = 1

	procs := make([]snapshot.ProcessInfo, 0, 20)
	for pid := 1; pid <= 20; pid++ {
		procs = append(procs, snapshot.ProcessInfo{PID: pid, Owner: "root", Command: "svc"})
	}

	total := uint64(1000)
	provider.EXPECT().TotalSystemCPUTicks().DoAndReturn(func() uint64 {
		total += 1000
		return total
	}).Times(10)
	provider.EXPECT().ListProcesses().Return(procs).Times(10)
	provider.EXPECT().ProcessCPUTicks(gomock.Any()).DoAndReturn(func(pid int) uint64 {
		return total / 100
	}).AnyTimes()

	for range 10 {
		s.sample()
	}

	// a static pid population converges on exactly one record per pid
	assert.Equal(t, 20, tbl.Len())
}

func Test_MemorySampler_Sample(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)

	tbl := table.New()
	tbl.Upsert(table.Record{PID: 1, Owner: "root", Command: "init", CPUPercent: 3.5, PrevCPUTicks: 42})

	s := NewMemorySampler(provider, tbl, controls.New(config.DefaultConfig()), testLogger())

	provider.EXPECT().ListProcesses().Return([]snapshot.ProcessInfo{
		{PID: 1, Owner: "root", Command: "init", MemoryMB: 12.5},
		{PID: 2, Owner: "alice", Command: "bash", MemoryMB: 6.25},
	})

	s.sample()

	byPID := snapshotByPID(tbl)
	require.Len(t, byPID, 2)

	assert.InDelta(t, 12.5, byPID[1].MemoryMB, 0.0001)
	assert.InDelta(t, 3.5, byPID[1].CPUPercent, 0.0001)
	assert.Equal(t, uint64(42), byPID[1].PrevCPUTicks)
	assert.InDelta(t, 6.25, byPID[2].MemoryMB, 0.0001)
	assert.Zero(t, byPID[2].CPUPercent)
}

func Test_Loop_ExitsWhenInactive(t *testing.T) {
	l := NewLoop("test", controls.New(config.DefaultConfig()), testLogger())

	done := make(chan struct{})
	go func() {
		l.Run(func() { t.Error("body must not run while inactive") })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit")
	}

	assert.Equal(t, StateStopped, l.State())
}

func Test_Loop_StopInterruptsIntervalSleep(t *testing.T) {
	ctrl := controls.New(config.DefaultConfig())
	ctrl.SetIntervalSeconds(3600)
	require.True(t, ctrl.Activate())

	l := NewLoop("test", ctrl, testLogger())

	done := make(chan struct{})
	go func() {
		l.Run(func() {})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	start := time.Now()
	ctrl.Deactivate()

	select {
	case <-done:
		assert.Less(t, time.Since(start), time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not interrupt the interval sleep")
	}
}

func Test_CPUSampler_Run_StopsPromptly(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	provider := snapshot.NewMockProvider(mockCtrl)
	provider.EXPECT().CoreCount().Return(1)
	provider.EXPECT().TotalSystemCPUTicks().Return(uint64(1000)).AnyTimes()
	provider.EXPECT().ListProcesses().Return(nil).AnyTimes()

	ctrl := controls.New(config.DefaultConfig())
	ctrl.SetIntervalSeconds(3600)
	require.True(t, ctrl.Activate())

	s := NewCPUSampler(provider, table.New(), ctrl, testLogger())

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	ctrl.Deactivate()

	select {
	case <-done:
		assert.Equal(t, StateStopped, s.State())
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop")
	}
}
