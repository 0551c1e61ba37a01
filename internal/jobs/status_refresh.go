package jobs

import (
	"log/slog"

	"tourmate/internal/infra/memstore"
	"tourmate/internal/pkg/clock"
	"tourmate/internal/pkg/config"
	"tourmate/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StatusRefresher periodically re-derives booked tour statuses so the
// persisted field keeps up with wall-clock time between reads.
type StatusRefresher struct {
	cron  *cron.Cron
	store *memstore.BookedTourStore
	clock clock.Clock
	spec  string
}

func NewStatusRefresher(cfg config.JobsConfig, store *memstore.BookedTourStore, clk clock.Clock) *StatusRefresher {
	return &StatusRefresher{
		cron:  cron.New(),
		store: store,
		clock: clk,
		spec:  cfg.StatusRefreshSpec,
	}
}

func (r *StatusRefresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.refresh); err != nil {
		return errs.Wrap(err, "invalid status refresh schedule")
	}
	r.cron.Start()
	slog.Info("status refresh job scheduled", "spec", r.spec)
	return nil
}

func (r *StatusRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *StatusRefresher) refresh() {
	changed := r.store.RefreshStatuses(r.clock.Now())
	if changed > 0 {
		slog.Info("refreshed booked tour statuses", "changed", changed)
	}
}
