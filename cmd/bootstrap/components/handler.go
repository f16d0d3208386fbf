package components

import (
	"condo-parking/internal/handler"
	"condo-parking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewUnitHandler,
		api.NewSpotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
