package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	property *api.PropertyHandler,
	booking *api.BookingHandler,
	calendar *api.CalendarHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Property: property,
		Booking:  booking,
		Calendar: calendar,
	}
}
