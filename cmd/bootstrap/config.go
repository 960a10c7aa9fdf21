package bootstrap

import (
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(cfg config.Config) config.MetricsConfig { return cfg.Metrics },
	),
)

var GatewayConfigModule = fx.Module("gateway/config",
	fx.Provide(
		config.LoadGatewayConfig,
		func(cfg config.GatewayConfig) config.LogConfig { return cfg.Log },
		func(cfg config.GatewayConfig) config.MetricsConfig { return cfg.Metrics },
		func(cfg config.GatewayConfig) config.UpstreamConfig { return cfg.Upstream },
		func(cfg config.GatewayConfig) config.RateLimitConfig { return cfg.RateLimit },
	),
)
