package controls

import "go.uber.org/fx"

// Module provides the control surface and its dependencies
var Module = fx.Options(
	fx.Provide(
		New,
	),
)
