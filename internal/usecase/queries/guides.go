package queries

import (
	"context"

	"tourmate/internal/domain/guide"
	"tourmate/internal/infra"
	"tourmate/internal/pkg/errs"
)

var ErrGuideNotFound = errs.ErrGuideNotFound

type GuideCatalogReadStore interface {
	Guides() []*guide.TourGuide
	GuideByID(id int64) (*guide.TourGuide, error)
	Destinations() []*guide.Destination
	DestinationByID(id int64) (*guide.Destination, error)
	ReviewsForDestination(destinationID int64) []guide.DestinationReview
}

type GuideQueries interface {
	ListGuides(ctx context.Context, search string) ([]*GuideView, error)
	GetGuide(ctx context.Context, id int64) (*GuideView, error)
}

type guideQueriesImpl struct {
	catalog GuideCatalogReadStore
}

func NewGuideQueries(catalog GuideCatalogReadStore) GuideQueries {
	return &guideQueriesImpl{catalog: catalog}
}

// ListGuides filters by case-insensitive substring over name, location
// and specialties, preserving catalog order. An empty term matches all.
func (q *guideQueriesImpl) ListGuides(_ context.Context, search string) ([]*GuideView, error) {
	views := make([]*GuideView, 0)
	for _, g := range q.catalog.Guides() {
		if g.MatchesSearch(search) {
			views = append(views, guideToView(g))
		}
	}
	return views, nil
}

func (q *guideQueriesImpl) GetGuide(_ context.Context, id int64) (*GuideView, error) {
	g, err := q.catalog.GuideByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return guideToView(g), nil
}
