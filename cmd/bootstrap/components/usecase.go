package components

import (
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/metrics"
	"flight-booking/internal/usecase/commands"
	"flight-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func() inventory.DefaultPicker { return inventory.NewDefaultPicker(nil) },
		fx.As(new(inventory.SeatPicker)),
	),
	fx.Annotate(
		func(m *metrics.Metrics) *metrics.Metrics { return m },
		fx.As(new(commands.Recorder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewConfirmationLedger,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFlightQueries,
		queries.NewBookingQueries,
	),
)
