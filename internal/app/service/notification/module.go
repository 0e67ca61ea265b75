package notification

import "go.uber.org/fx"

// Module exposes the delivery tracker via Fx.
var Module = fx.Options(
	fx.Provide(NewTracker),
)
