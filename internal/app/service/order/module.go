package order

import "go.uber.org/fx"

// Module exposes the order management service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
