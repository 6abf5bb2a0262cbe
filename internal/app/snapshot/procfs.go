package snapshot

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	unknownField = "Unknown"
	kbPerMB      = 1024.0
)

// procfsProvider reads process state from /proc
type procfsProvider struct {
	root string

	mu       sync.RWMutex
	userByID map[string]string
}

// NewProvider creates a /proc-backed snapshot provider
func NewProvider() Provider {
	return &procfsProvider{
		root:     "/proc",
		userByID: make(map[string]string),
	}
}

// ListProcesses enumerates /proc once. Entries whose detail files cannot be
// read keep "Unknown" fields or zero memory rather than failing the pass.
func (p *procfsProvider) ListProcesses() []ProcessInfo {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil
	}

	infos := make([]ProcessInfo, 0, len(entries))

	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}

		memoryMB, uid := p.readStatus(pid)

		infos = append(infos, ProcessInfo{
			PID:      pid,
			Owner:    p.lookupUser(uid),
			Command:  p.readCommand(pid),
			MemoryMB: memoryMB,
		})
	}

	return infos
}

// TotalSystemCPUTicks sums every time field on the first line of /proc/stat.
// Returns 0 on read failure; the sampler's zero-delta guard absorbs it.
func (p *procfsProvider) TotalSystemCPUTicks() uint64 {
	data, err := os.ReadFile(p.root + "/stat")
	if err != nil {
		return 0
	}

	line, _, _ := strings.Cut(string(data), "\n")

	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "cpu" {
		return 0
	}

	var total uint64

	for _, field := range fields[1:] {
		v, err := strconv.ParseUint(field, 10, 64)
		if err == nil {
			total += v
		}
	}

	return total
}

// ProcessCPUTicks returns the cumulative utime+stime+cutime+cstime for pid,
// 0 when the process cannot be read
func (p *procfsProvider) ProcessCPUTicks(pid int) uint64 {
	data, err := os.ReadFile(fmt.Sprintf("%s/%d/stat", p.root, pid))
	if err != nil {
		return 0
	}

	// the comm field may contain spaces and parens, so fields are counted
	// after the last closing paren
	line := string(data)

	idx := strings.LastIndexByte(line, ')')
	if idx < 0 {
		return 0
	}

	fields := strings.Fields(line[idx+1:])

	// utime is overall field 14; after the paren split it sits at index 11
	const utimeIdx = 11
	if len(fields) < utimeIdx+4 {
		return 0
	}

	var total uint64

	for i := utimeIdx; i < utimeIdx+4; i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return 0
		}

		total += v
	}

	return total
}

// CoreCount reports the number of logical cores, queried once at engine start
func (p *procfsProvider) CoreCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}

	return count
}

// Host returns load average and memory figures for the display header.
// Zero values on read failure; the header renders them as unavailable.
func (p *procfsProvider) Host() HostStats {
	stats := HostStats{}

	if avg, err := load.Avg(); err == nil {
		stats.Load1 = avg.Load1
		stats.Load5 = avg.Load5
		stats.Load15 = avg.Load15
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemUsedMB = float64(vm.Used) / kbPerMB / kbPerMB
		stats.MemTotalMB = float64(vm.Total) / kbPerMB / kbPerMB
	}

	return stats
}

// readStatus extracts VmRSS (in MB) and the real uid from /proc/<pid>/status
func (p *procfsProvider) readStatus(pid int) (memoryMB float64, uid string) {
	data, err := os.ReadFile(fmt.Sprintf("%s/%d/status", p.root, pid))
	if err != nil {
		return 0, ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "VmRSS:"):
			fields := strings.Fields(line[len("VmRSS:"):])
			if len(fields) > 0 {
				if kb, err := strconv.ParseFloat(fields[0], 64); err == nil {
					memoryMB = kb / kbPerMB
				}
			}

		case strings.HasPrefix(line, "Uid:"):
			fields := strings.Fields(line[len("Uid:"):])
			if len(fields) > 0 {
				uid = fields[0]
			}
		}
	}

	return memoryMB, uid
}

// readCommand returns the short command name from /proc/<pid>/comm
func (p *procfsProvider) readCommand(pid int) string {
	data, err := os.ReadFile(fmt.Sprintf("%s/%d/comm", p.root, pid))
	if err != nil {
		return unknownField
	}

	command := strings.TrimSpace(string(data))
	if command == "" {
		return unknownField
	}

	return command
}

// lookupUser resolves a uid to a username through a cache; repeated lookups
// per enumeration pass would otherwise dominate the cycle
func (p *procfsProvider) lookupUser(uid string) string {
	if uid == "" {
		return unknownField
	}

	p.mu.RLock()
	name, ok := p.userByID[uid]
	p.mu.RUnlock()

	if ok {
		return name
	}

	name = unknownField
	if u, err := user.LookupId(uid); err == nil {
		name = u.Username
	}

	p.mu.Lock()
	p.userByID[uid] = name
	p.mu.Unlock()

	return name
}
