package queries

import (
	"context"
	"strings"

	"tourmate/internal/domain/guide"
)

type DestinationQueries interface {
	ListDestinations(ctx context.Context, nameFilter string, page, limit int) (*DestinationPage, error)
	DestinationReviews(ctx context.Context, destinationID int64) ([]DestinationReviewView, error)
}

type destinationQueriesImpl struct {
	catalog GuideCatalogReadStore
}

func NewDestinationQueries(catalog GuideCatalogReadStore) DestinationQueries {
	return &destinationQueriesImpl{catalog: catalog}
}

// ListDestinations scans the flattened catalog with a case-insensitive
// name substring filter, then pages the filtered sequence. Filtering
// happens before paging so page counts reflect the filtered total.
func (q *destinationQueriesImpl) ListDestinations(_ context.Context, nameFilter string, page, limit int) (*DestinationPage, error) {
	page, limit = NormalizePage(page, limit)

	term := strings.ToLower(strings.TrimSpace(nameFilter))
	filtered := make([]*guide.Destination, 0)
	for _, d := range q.catalog.Destinations() {
		if term == "" || strings.Contains(strings.ToLower(d.Name()), term) {
			filtered = append(filtered, d)
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]DestinationView, 0, end-start)
	for _, d := range filtered[start:end] {
		items = append(items, destinationToView(d))
	}

	return &DestinationPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// DestinationReviews returns the embedded review list in order; both
// an absent destination and one without reviews yield an empty slice.
func (q *destinationQueriesImpl) DestinationReviews(_ context.Context, destinationID int64) ([]DestinationReviewView, error) {
	reviews := q.catalog.ReviewsForDestination(destinationID)
	views := make([]DestinationReviewView, len(reviews))
	for i, r := range reviews {
		views[i] = DestinationReviewView{Rating: r.Rating(), Text: r.Text()}
	}
	return views, nil
}
