package report

import (
	"github.com/mn-frappe/ebalance/internal/report/service"
	"github.com/mn-frappe/ebalance/internal/report/transformer"
	"go.uber.org/fx"
)

var Module = fx.Module("report",
	fx.Provide(
		transformer.New,
		service.NewService,
	),
)
