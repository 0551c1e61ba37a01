package queries

import (
	"context"

	"tourmate/internal/domain/tour"
	"tourmate/internal/infra"
	"tourmate/internal/pkg/clock"
	"tourmate/internal/pkg/errs"
)

var ErrTourNotFound = errs.ErrTourNotFound

type BookedTourReadStore interface {
	List() []*tour.BookedTour
	Get(id int64) (*tour.BookedTour, error)
}

type TourQueries interface {
	ListBookedTours(ctx context.Context) ([]*BookedTourView, error)
	GetBookedTour(ctx context.Context, id int64) (*BookedTourView, error)
}

type tourQueriesImpl struct {
	store BookedTourReadStore
	clock clock.Clock
}

func NewTourQueries(store BookedTourReadStore, clk clock.Clock) TourQueries {
	return &tourQueriesImpl{store: store, clock: clk}
}

func (q *tourQueriesImpl) ListBookedTours(_ context.Context) ([]*BookedTourView, error) {
	now := q.clock.Now()
	tours := q.store.List()
	views := make([]*BookedTourView, len(tours))
	for i, t := range tours {
		views[i] = tourToView(t, now)
	}
	return views, nil
}

func (q *tourQueriesImpl) GetBookedTour(_ context.Context, id int64) (*BookedTourView, error) {
	t, err := q.store.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return tourToView(t, q.clock.Now()), nil
}
