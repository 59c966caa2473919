package components

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPropertyCommands,
		commands.NewBookingCommands,
		commands.NewCalendarSourceCommands,
		commands.NewCalendarSyncCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPropertyQueries,
		queries.NewBookingQueries,
		queries.NewCalendarQueries,
		queries.NewAvailabilityQueries,
		queries.NewListingMatchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
