//go:build unit

package tour_test

import (
	"testing"

	"tourmate/internal/domain/tour"
	"tourmate/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookedTour(t *testing.T) {
	g := builder.NewGuideBuilder().
		WithDestinations(builder.NewDestinationBuilder().MustBuild()).
		MustBuild()
	dates, err := tour.ParseDateRange("2024-03-10", "2024-03-12")
	require.NoError(t, err)
	price, err := tour.NewPrice(2_500_000)
	require.NoError(t, err)

	t.Run("derives status from booking instant", func(t *testing.T) {
		booked, err := tour.NewBookedTour(1, "Sapa Trekking Adventure", "sapa.jpg",
			dates, g, 3, price, date(2024, 3, 1))
		require.NoError(t, err)

		assert.Zero(t, booked.ID())
		assert.Equal(t, tour.StatusUpcoming, booked.Status())
		assert.Nil(t, booked.Review())
	})

	t.Run("empty destination name", func(t *testing.T) {
		_, err := tour.NewBookedTour(1, "  ", "sapa.jpg", dates, g, 3, price, date(2024, 3, 1))
		assert.ErrorIs(t, err, tour.ErrEmptyDestination)
	})

	t.Run("missing guide", func(t *testing.T) {
		_, err := tour.NewBookedTour(1, "Sapa", "sapa.jpg", dates, nil, 3, price, date(2024, 3, 1))
		assert.ErrorIs(t, err, tour.ErrMissingGuide)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := tour.NewBookedTour(1, "Sapa", "sapa.jpg", dates, g, 0, price, date(2024, 3, 1))
		assert.ErrorIs(t, err, tour.ErrInvalidDuration)
	})
}

func TestBookedTourCopySemantics(t *testing.T) {
	original := builder.NewTourBuilder().BuildDomain()

	t.Run("WithID leaves the receiver untouched", func(t *testing.T) {
		updated := original.WithID(42)
		assert.Equal(t, int64(42), updated.ID())
		assert.Equal(t, int64(1), original.ID())
	})

	t.Run("WithReview replaces wholesale", func(t *testing.T) {
		first, err := tour.NewReview(2, "rushed itinerary")
		require.NoError(t, err)
		second, err := tour.NewReview(5, "")
		require.NoError(t, err)

		reviewed := original.WithReview(first)
		require.NotNil(t, reviewed.Review())
		assert.Equal(t, 2, reviewed.Review().Rating().Value())
		assert.Nil(t, original.Review())

		replaced := reviewed.WithReview(second)
		assert.Equal(t, 5, replaced.Review().Rating().Value())
		assert.Empty(t, replaced.Review().Text())
	})

	t.Run("Review getter returns a copy", func(t *testing.T) {
		review, err := tour.NewReview(4, "good")
		require.NoError(t, err)
		reviewed := original.WithReview(review)

		a := reviewed.Review()
		b := reviewed.Review()
		assert.NotSame(t, a, b)
		assert.Equal(t, *a, *b)
	})

	t.Run("WithStatus refreshes the cached projection", func(t *testing.T) {
		completed := original.WithStatus(date(2030, 1, 1))
		assert.Equal(t, tour.StatusCompleted, completed.Status())
		assert.Equal(t, tour.StatusUpcoming, original.Status())
	})
}

func TestBookedTourStatusAt(t *testing.T) {
	booked := builder.NewTourBuilder().WithDates("2024-03-10", "2024-03-12").BuildDomain()

	assert.Equal(t, tour.StatusUpcoming, booked.StatusAt(date(2024, 3, 9)))
	assert.Equal(t, tour.StatusInProgress, booked.StatusAt(date(2024, 3, 11)))
	assert.Equal(t, tour.StatusCompleted, booked.StatusAt(date(2024, 3, 13)))
}
