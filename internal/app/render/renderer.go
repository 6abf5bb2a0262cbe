//go:generate mockgen -source=renderer.go -destination=renderer_mock.go -package=render
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"procman/internal/app/colors"
	"procman/internal/app/controls"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/config"
)

const (
	pidWidth    = 8
	ownerWidth  = 12
	cpuWidth    = 8
	memoryWidth = 12

	fallbackTermWidth = 80
	minTermWidth      = 40
)

// View is one display frame's worth of state, assembled by the display loop
type View struct {
	Rows     []table.Record
	Host     snapshot.HostStats
	Total    int
	Paused   bool
	SortBy   controls.SortCriterion
	Filter   controls.Filter
	Interval time.Duration
}

// Renderer draws a frame for the terminal
type Renderer interface {
	Frame(view View) string
}

// tableRenderer implements the Renderer interface with lipgloss styling
type tableRenderer struct {
	cfg *config.Config

	headerStyle lipgloss.Style
	hostStyle   lipgloss.Style
	statusStyle lipgloss.Style
	cpuHigh     lipgloss.Style
	cpuModerate lipgloss.Style
	cpuNormal   lipgloss.Style

	termWidth func() int
}

// New creates a terminal-width-aware table renderer
func New(cfg *config.Config) Renderer {
	return &tableRenderer{
		cfg:         cfg,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		hostStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		cpuHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		cpuModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		cpuNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		termWidth:   stdoutWidth,
	}
}

func stdoutWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width < minTermWidth {
		return fallbackTermWidth
	}

	return width
}

// Frame renders the host header, the process table and the status footer
func (r *tableRenderer) Frame(view View) string {
	commandWidth := r.commandWidth()

	var b strings.Builder

	b.WriteString(r.styled(r.hostStyle, r.hostLine(view.Host)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-*s %-*s %*s %*s  %s",
		pidWidth, "PID",
		ownerWidth, "User",
		cpuWidth, "CPU(%)",
		memoryWidth, "Memory(MB)",
		"Command",
	)
	b.WriteString(r.styled(r.headerStyle, header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", r.frameWidth(commandWidth)))
	b.WriteByte('\n')

	for _, rec := range view.Rows {
		b.WriteString(r.row(rec, commandWidth))
		b.WriteByte('\n')
	}

	if len(view.Rows) == 0 {
		b.WriteString("(no processes match)\n")
	}

	b.WriteByte('\n')
	b.WriteString(r.styled(r.statusStyle, r.statusLine(view)))
	b.WriteByte('\n')

	return b.String()
}

func (r *tableRenderer) row(rec table.Record, commandWidth int) string {
	cpu := fmt.Sprintf("%*.2f", cpuWidth, rec.CPUPercent)

	switch {
	case rec.CPUPercent > colors.CPUHighThreshold:
		cpu = r.styled(r.cpuHigh, cpu)
	case rec.CPUPercent > colors.CPUModerateThreshold:
		cpu = r.styled(r.cpuModerate, cpu)
	default:
		cpu = r.styled(r.cpuNormal, cpu)
	}

	return fmt.Sprintf("%-*d %-*s %s %*.2f  %s",
		pidWidth, rec.PID,
		ownerWidth, truncate(rec.Owner, ownerWidth),
		cpu,
		memoryWidth, rec.MemoryMB,
		truncate(rec.Command, commandWidth),
	)
}

func (r *tableRenderer) hostLine(host snapshot.HostStats) string {
	return fmt.Sprintf("load %.2f %.2f %.2f | memory %.0f/%.0f MB",
		host.Load1, host.Load5, host.Load15,
		host.MemUsedMB, host.MemTotalMB,
	)
}

func (r *tableRenderer) statusLine(view View) string {
	filter := "none"
	if view.Filter.Kind != controls.FilterNone {
		filter = fmt.Sprintf("%s %s", view.Filter.Kind, view.Filter.Value)
	}

	state := "running"
	if view.Paused {
		state = "paused"
	}

	return fmt.Sprintf("%d of %d processes | sort %s | filter %s | interval %s | %s",
		len(view.Rows), view.Total, view.SortBy, filter, view.Interval, state,
	)
}

// commandWidth shrinks the command column on narrow terminals, keeping the
// fixed columns intact
func (r *tableRenderer) commandWidth() int {
	fixed := pidWidth + ownerWidth + cpuWidth + memoryWidth + 5
	width := r.termWidth() - fixed

	if width > config.CommandDisplayWidth {
		return config.CommandDisplayWidth
	}
	if width < 10 {
		return 10
	}

	return width
}

func (r *tableRenderer) frameWidth(commandWidth int) int {
	return pidWidth + ownerWidth + cpuWidth + memoryWidth + 5 + commandWidth
}

// the no-color flag can flip after construction, so it is read per render
func (r *tableRenderer) styled(style lipgloss.Style, text string) string {
	if r.cfg.Display.NoColor {
		return text
	}

	return style.Render(text)
}

// truncate shortens text beyond max to a 3-dot ellipsis form
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}

	return text[:max-3] + "..."
}
