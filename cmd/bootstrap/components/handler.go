package components

import (
	"tourmate/internal/handler"
	"tourmate/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGuideHandler,
		api.NewDestinationHandler,
		api.NewTourHandler,
		api.NewApplicationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
