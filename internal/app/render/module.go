package render

import "go.uber.org/fx"

// Module provides the renderer and its dependencies
var Module = fx.Options(
	fx.Provide(
		New,
	),
)
