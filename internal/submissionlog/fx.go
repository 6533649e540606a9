package submissionlog

import (
	"github.com/mn-frappe/ebalance/internal/submissionlog/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("submissionlog",
	fx.Provide(repository.Provide),
)
