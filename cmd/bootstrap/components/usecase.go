package components

import (
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewItemCommands,
		commands.NewCommentCommands,
		commands.NewBookingCommands,
		commands.NewItemRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewBookingQueries,
		queries.NewItemRequestQueries,
	),
)
