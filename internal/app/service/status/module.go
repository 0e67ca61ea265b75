package status

import "go.uber.org/fx"

// Module exposes the status registry via Fx.
var Module = fx.Options(
	fx.Provide(NewRegistry),
)
