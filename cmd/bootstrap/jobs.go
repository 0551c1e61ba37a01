package bootstrap

import (
	"context"

	"tourmate/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewStatusRefresher,
	),
	fx.Invoke(registerStatusRefresher),
)

func registerStatusRefresher(lc fx.Lifecycle, refresher *jobs.StatusRefresher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return refresher.Start()
		},
		OnStop: func(_ context.Context) error {
			refresher.Stop()
			return nil
		},
	})
}
