package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"flight-booking/internal/infra/idempotency"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
	),
)

var IdempotencyModule = fx.Module("idempotency",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore falls back to a no-op store when REDIS_ADDR is unset.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (idempotency.Store, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, idempotent replay disabled")
		return idempotency.NoopStore{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := idempotency.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})
	logger.Info("idempotent replay enabled", "redis_addr", cfg.Redis.Addr, "ttl", cfg.Redis.IdempotencyTTL)

	return idempotency.NewRedisStore(client, cfg.Redis.IdempotencyTTL), nil
}
