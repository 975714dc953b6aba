package components

import (
	"context"
	"log/slog"

	"flight-booking/internal/infra/db"
	"flight-booking/internal/infra/memstore"
	"flight-booking/internal/infra/readstore"
	"flight-booking/internal/infra/uow"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/usecase/queries"
	"flight-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
	),
)

// Storage is the write side and both read stores of one storage driver.
type Storage struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Flights    queries.FlightReadStore
	Bookings   queries.BookingReadStore
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Info("using in-memory storage; data is lost on restart")
		return MemoryStorage(memstore.NewStore()), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Storage{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	logger.Info("using postgres storage", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	return PostgresStorage(pool), nil
}

func PostgresStorage(pool *pgxpool.Pool) Storage {
	return Storage{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Flights:    readstore.NewFlightReadStore(pool),
		Bookings:   readstore.NewBookingReadStore(pool),
	}
}

func MemoryStorage(store *memstore.Store) Storage {
	return Storage{
		UnitOfWork: memstore.NewUnitOfWork(store),
		Flights:    memstore.NewFlightReadStore(store),
		Bookings:   memstore.NewBookingReadStore(store),
	}
}
