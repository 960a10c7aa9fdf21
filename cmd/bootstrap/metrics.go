package bootstrap

import (
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(RegisterMetrics),
)

func RegisterMetrics(cfg config.MetricsConfig) {
	if cfg.Enabled {
		metrics.Register()
	}
}
