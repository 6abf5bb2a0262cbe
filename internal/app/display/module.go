package display

import "go.uber.org/fx"

// Module provides the display loop and its dependencies
var Module = fx.Options(
	fx.Provide(
		New,
	),
)
