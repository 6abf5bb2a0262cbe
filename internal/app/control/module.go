package control

import "go.uber.org/fx"

// Module provides the terminator and its dependencies
var Module = fx.Options(
	fx.Provide(
		NewTerminator,
	),
)
