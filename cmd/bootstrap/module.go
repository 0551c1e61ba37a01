package bootstrap

import (
	"tourmate/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JobsModule,
	components.StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
