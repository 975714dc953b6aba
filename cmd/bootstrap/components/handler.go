package components

import (
	"log/slog"

	"flight-booking/internal/handler"
	"flight-booking/internal/handler/api"
	"flight-booking/internal/infra/idempotency"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFlightHandler,
		api.NewBookingHandler,
		NewRouterDeps,
	),
	fx.Invoke(handler.NewRouter),
)

type routerParams struct {
	fx.In

	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Idempotency    idempotency.Store
	FlightHandler  *api.FlightHandler
	BookingHandler *api.BookingHandler
}

func NewRouterDeps(p routerParams) handler.RouterDeps {
	return handler.RouterDeps{
		Config:         p.Config,
		Logger:         p.Logger,
		Metrics:        p.Metrics,
		Idempotency:    p.Idempotency,
		FlightHandler:  p.FlightHandler,
		BookingHandler: p.BookingHandler,
	}
}
