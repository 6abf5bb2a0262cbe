package app

import (
	"go.uber.org/fx"

	"procman/internal/app/bus"
	"procman/internal/app/cli"
	"procman/internal/app/control"
	"procman/internal/app/controls"
	"procman/internal/app/display"
	"procman/internal/app/eventlog"
	"procman/internal/app/monitor"
	"procman/internal/app/render"
	"procman/internal/app/sampler"
	"procman/internal/app/snapshot"
	"procman/internal/app/table"
	"procman/internal/app/watcher"
)

var Module = fx.Options(
	bus.Module,
	eventlog.Module,
	snapshot.Module,
	table.Module,
	controls.Module,
	sampler.Module,
	render.Module,
	display.Module,
	monitor.Module,
	control.Module,
	watcher.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
