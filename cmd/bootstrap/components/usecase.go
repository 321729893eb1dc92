package components

import (
	"hoster-calendar/internal/usecase/commands"
	"hoster-calendar/internal/usecase/queries"
	"hoster-calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	shared.NewHostCalendar,
	shared.NewSnapshotStore,
	shared.NewInflightGuard,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCalendarCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCalendarQueries,
	),
)
