package bootstrap

import (
	"flight-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	IdempotencyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
