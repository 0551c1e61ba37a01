//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"tourmate/internal/domain/guide"
	"tourmate/internal/domain/tour"
	"tourmate/internal/infra"
	"tourmate/internal/infra/memstore"
	"tourmate/internal/infra/seed"
	"tourmate/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog(t *testing.T) *memstore.GuideCatalog {
	t.Helper()
	guides, err := seed.Catalog()
	require.NoError(t, err)
	catalog, err := memstore.NewGuideCatalog(guides)
	require.NoError(t, err)
	return catalog
}

func TestNewGuideCatalog(t *testing.T) {
	t.Run("rejects duplicate guide ids", func(t *testing.T) {
		a := builder.NewGuideBuilder().WithID(1).MustBuild()
		b := builder.NewGuideBuilder().WithID(1).WithName("Someone Else").MustBuild()
		_, err := memstore.NewGuideCatalog([]*guide.TourGuide{a, b})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("rejects a destination id reused across guides", func(t *testing.T) {
		a := builder.NewGuideBuilder().WithID(1).
			WithDestinations(builder.NewDestinationBuilder().WithID(9).WithGuideID(1).MustBuild()).
			MustBuild()
		b := builder.NewGuideBuilder().WithID(2).
			WithDestinations(builder.NewDestinationBuilder().WithID(9).WithGuideID(2).MustBuild()).
			MustBuild()
		_, err := memstore.NewGuideCatalog([]*guide.TourGuide{a, b})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestGuideCatalogLookups(t *testing.T) {
	catalog := seededCatalog(t)

	t.Run("guides keep seed order", func(t *testing.T) {
		guides := catalog.Guides()
		require.Len(t, guides, 2)
		assert.Equal(t, "Tan Dinh Nguyen", guides[0].Name())
		assert.Equal(t, "Nguyen Cao Mai", guides[1].Name())
	})

	t.Run("destinations flatten in guide order", func(t *testing.T) {
		var gotIDs []int64
		for _, d := range catalog.Destinations() {
			gotIDs = append(gotIDs, d.ID())
		}
		if diff := cmp.Diff([]int64{1, 2, 3, 4}, gotIDs); diff != "" {
			t.Errorf("destination order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("guide lookup by id", func(t *testing.T) {
		g, err := catalog.GuideByID(2)
		require.NoError(t, err)
		assert.Equal(t, "Nguyen Cao Mai", g.Name())

		_, err = catalog.GuideByID(42)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("destination lookup by id", func(t *testing.T) {
		d, err := catalog.DestinationByID(2)
		require.NoError(t, err)
		assert.Equal(t, "Halong Bay Cruise", d.Name())

		_, err = catalog.DestinationByID(42)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("every destination maps back to its owner", func(t *testing.T) {
		for _, d := range catalog.Destinations() {
			owner, err := catalog.GuideForDestination(d.ID())
			require.NoError(t, err)
			assert.Equal(t, d.GuideID(), owner.ID())
		}

		_, err := catalog.GuideForDestination(42)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("reviews for unknown destination are empty not nil", func(t *testing.T) {
		reviews := catalog.ReviewsForDestination(42)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})
}

func TestSeedBookedTours(t *testing.T) {
	catalog := seededCatalog(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tours, err := seed.BookedTours(catalog.Guides(), now)
	require.NoError(t, err)
	require.Len(t, tours, 3)

	t.Run("denormalizes from the referenced destination", func(t *testing.T) {
		halong := tours[2]
		assert.Equal(t, int64(3), halong.ID())
		assert.Equal(t, int64(2), halong.DestinationID())
		assert.Equal(t, "Halong Bay Cruise", halong.DestinationName())
		assert.Equal(t, int64(1), halong.Guide().ID())
	})

	t.Run("statuses derived at load time", func(t *testing.T) {
		for _, bt := range tours {
			assert.Equal(t, tour.StatusCompleted, bt.Status())
		}
	})

	t.Run("only the Halong cruise carries a seed review", func(t *testing.T) {
		assert.Nil(t, tours[0].Review())
		assert.Nil(t, tours[1].Review())
		require.NotNil(t, tours[2].Review())
		assert.Equal(t, 5, tours[2].Review().Rating().Value())
	})
}
