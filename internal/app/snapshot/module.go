package snapshot

import "go.uber.org/fx"

// Module provides the snapshot provider and its dependencies
var Module = fx.Options(
	fx.Provide(
		NewProvider,
	),
)
