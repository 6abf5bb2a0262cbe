package monitor

import "go.uber.org/fx"

// Module provides the engine and its dependencies
var Module = fx.Options(
	fx.Provide(
		NewEngine,
	),
)
