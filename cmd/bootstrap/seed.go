package bootstrap

import (
	"context"
	"log/slog"

	"flight-booking/internal/infra/seed"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(RegisterSeeder),
)

// RegisterSeeder tops the flight table up to SEED_FLIGHTS before the server starts.
func RegisterSeeder(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if cfg.Seed.Flights == 0 {
		return
	}
	seeder := seed.NewSeeder(uow, clk, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seeder.SeedFlights(ctx, cfg.Seed.Flights)
			return err
		},
	})
}
