package mapping

import (
	"github.com/mn-frappe/ebalance/internal/mapping/service"
	"go.uber.org/fx"
)

// Module wires the account auto-mapping service.
var Module = fx.Module("mapping",
	fx.Provide(service.NewService),
)
