package bootstrap

import (
	"log/slog"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg).GetSlogLogger()
}
