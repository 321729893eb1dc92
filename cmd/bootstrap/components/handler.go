package components

import (
	"hoster-calendar/internal/handler"
	"hoster-calendar/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCalendarHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
