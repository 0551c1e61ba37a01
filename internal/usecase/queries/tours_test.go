//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tourmate/internal/domain/tour"
	"tourmate/internal/infra/memstore"
	"tourmate/internal/pkg/clock"
	"tourmate/internal/usecase/queries"
	"tourmate/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTourQueries(t *testing.T, now time.Time) (queries.TourQueries, *memstore.BookedTourStore, *clock.MockClock) {
	t.Helper()
	store, err := memstore.NewBookedTourStore([]*tour.BookedTour{
		builder.NewTourBuilder().WithID(1).WithDates("2024-03-10", "2024-03-12").BuildDomain(),
		builder.NewTourBuilder().WithID(2).WithDates("2024-06-01", "2024-06-01").BuildDomain(),
	})
	require.NoError(t, err)
	clk := clock.NewMockClock(now)
	return queries.NewTourQueries(store, clk), store, clk
}

func TestListBookedTours(t *testing.T) {
	q, _, clk := newTourQueries(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))

	views, err := q.ListBookedTours(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	t.Run("status is derived at read time", func(t *testing.T) {
		assert.Equal(t, "InProgress", views[0].Status)
		assert.Equal(t, "Upcoming", views[1].Status)

		// The same records read later report a different lifecycle
		// state without any write in between.
		clk.Set(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
		later, err := q.ListBookedTours(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Completed", later[0].Status)
		assert.Equal(t, "Completed", later[1].Status)
	})

	t.Run("dates render as calendar strings", func(t *testing.T) {
		assert.Equal(t, "2024-03-10", views[0].StartDate)
		assert.Equal(t, "2024-03-12", views[0].EndDate)
	})

	t.Run("guide summary is embedded", func(t *testing.T) {
		assert.Equal(t, int64(1), views[0].Guide.ID)
		assert.NotEmpty(t, views[0].Guide.Name)
	})
}

func TestGetBookedTour(t *testing.T) {
	q, store, _ := newTourQueries(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	t.Run("found", func(t *testing.T) {
		view, err := q.GetBookedTour(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.ID)
		assert.Nil(t, view.Review)
	})

	t.Run("review appears after submission", func(t *testing.T) {
		review, err := tour.NewReview(4, "windy but worth it")
		require.NoError(t, err)
		_, err = store.UpdateReview(1, review)
		require.NoError(t, err)

		view, err := q.GetBookedTour(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, view.Review)
		assert.Equal(t, 4, view.Review.Rating)
		assert.Equal(t, "windy but worth it", view.Review.Text)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetBookedTour(context.Background(), 99)
		assert.ErrorIs(t, err, queries.ErrTourNotFound)
	})
}
