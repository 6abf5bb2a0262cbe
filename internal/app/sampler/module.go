package sampler

import "go.uber.org/fx"

// Module provides the samplers and their dependencies
var Module = fx.Options(
	fx.Provide(
		NewCPUSampler,
		NewMemorySampler,
	),
)
