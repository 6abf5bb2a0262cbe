//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=snapshot
package snapshot

// ProcessInfo is one process as reported by a single enumeration pass
type ProcessInfo struct {
	PID      int
	Owner    string
	Command  string
	MemoryMB float64
}

// HostStats carries system-wide figures for the display header
type HostStats struct {
	Load1      float64
	Load5      float64
	Load15     float64
	MemUsedMB  float64
	MemTotalMB float64
}

// Provider supplies raw process and system readings to the sampler loops.
// Every method is best-effort: enumeration entries fall back to "Unknown"
// fields and tick reads return 0 when a process cannot be read, so a vanished
// process never fails a sampling cycle.
type Provider interface {
	ListProcesses() []ProcessInfo
	TotalSystemCPUTicks() uint64
	ProcessCPUTicks(pid int) uint64
	CoreCount() int
	Host() HostStats
}
