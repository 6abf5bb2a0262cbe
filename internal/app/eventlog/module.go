package eventlog

import "go.uber.org/fx"

// Module provides the event log recorder and its dependencies
var Module = fx.Options(
	fx.Provide(
		New,
	),
)
