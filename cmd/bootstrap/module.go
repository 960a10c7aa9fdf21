package bootstrap

import (
	"shareit/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the core server.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
