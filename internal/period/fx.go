package period

import "go.uber.org/fx"

var Module = fx.Module("period",
	fx.Provide(Provide),
)
