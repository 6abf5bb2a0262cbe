package display

import (
	"fmt"
	"io"
	"os"
	"sort"

	"procman/internal/app/colors"
	"procman/internal/app/controls"
	"procman/internal/app/render"
	"procman/internal/app/sampler"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/config"
	"procman/internal/config/logger"
)

// Display periodically takes a table snapshot, arranges it by the current
// criteria and writes a full frame to the terminal
type Display struct {
	table    table.Table
	ctrl     controls.Controls
	provider snapshot.Provider
	renderer render.Renderer
	log      logger.Logger
	loop     *sampler.Loop

	cfg *config.Config
	out io.Writer
}

func New(
	tbl table.Table,
	ctrl controls.Controls,
	provider snapshot.Provider,
	renderer render.Renderer,
	cfg *config.Config,
	log logger.Logger,
) *Display {
	return &Display{
		table:    tbl,
		ctrl:     ctrl,
		provider: provider,
		renderer: renderer,
		log:      log,
		loop:     sampler.NewLoop("display", ctrl, log),
		cfg:      cfg,
		out:      os.Stdout,
	}
}

// Run drives the display until the control surface deactivates. It is meant
// to be called on its own goroutine.
func (d *Display) Run() {
	d.loop.Run(d.cycle)
}

// State exposes the underlying loop state
func (d *Display) State() string {
	return d.loop.State()
}

func (d *Display) cycle() {
	records := d.table.Snapshot()
	rows := Arrange(records, d.ctrl.Filter(), d.ctrl.SortBy(), d.cfg.Display.Rows)

	view := render.View{
		Rows:     rows,
		Host:     d.provider.Host(),
		Total:    len(records),
		Paused:   d.ctrl.Paused(),
		SortBy:   d.ctrl.SortBy(),
		Filter:   d.ctrl.Filter(),
		Interval: d.ctrl.Interval(),
	}

	if !d.cfg.Display.NoColor {
		fmt.Fprint(d.out, colors.ClearScreen)
	}
	fmt.Fprint(d.out, d.renderer.Frame(view))
}

// Arrange filters the snapshot, stable-sorts it descending by the criterion
// and caps the result. The input slice is never mutated; ties keep the
// snapshot's first-seen order so successive frames do not shuffle.
func Arrange(
	records []table.Record,
	filter controls.Filter,
	sortBy controls.SortCriterion,
	maxRows int,
) []table.Record {
	rows := make([]table.Record, 0, len(records))
	for _, rec := range records {
		if filter.Matches(rec) {
			rows = append(rows, rec)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if sortBy == controls.SortByMemory {
			return rows[i].MemoryMB > rows[j].MemoryMB
		}

		return rows[i].CPUPercent > rows[j].CPUPercent
	})

	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	return rows
}
