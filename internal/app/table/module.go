package table

import "go.uber.org/fx"

// Module provides the process table and its dependencies
var Module = fx.Options(
	fx.Provide(
		New,
	),
)
