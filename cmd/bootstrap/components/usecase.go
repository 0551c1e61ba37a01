package components

import (
	"tourmate/internal/pkg/clock"
	"tourmate/internal/usecase/commands"
	"tourmate/internal/usecase/queries"

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
		commands.NewTourCommands,
		commands.NewApplicationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTourQueries,
		queries.NewGuideQueries,
		queries.NewDestinationQueries,
	),
)
