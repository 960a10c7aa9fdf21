package bootstrap

import (
	"shareit/internal/gateway"
	"shareit/internal/pkg/clock"

	"go.uber.org/fx"
)

var GatewayModule = fx.Options(
	GatewayConfigModule,
	LoggerModule,
	MetricsModule,
	fx.Module("gateway",
		fx.Provide(
			clock.NewRealClock,
			gateway.NewClient,
			gateway.NewHandler,
			gateway.NewRateLimiter,
		),
		fx.Invoke(gateway.NewRouter),
	),
)
