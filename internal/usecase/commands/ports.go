package commands

import (
	"context"

	"tourmate/internal/domain/application"
	"tourmate/internal/domain/guide"
	"tourmate/internal/domain/tour"

	"github.com/google/uuid"
)

// Write-side ports implemented by the infra layer.

type BookedTourWriteStore interface {
	Add(t *tour.BookedTour) (*tour.BookedTour, error)
	UpdateReview(id int64, review tour.Review) (*tour.BookedTour, error)
}

type CatalogLookup interface {
	GuideByID(id int64) (*guide.TourGuide, error)
	DestinationByID(id int64) (*guide.Destination, error)
	GuideForDestination(destinationID int64) (*guide.TourGuide, error)
}

type GuideApplicationRepository interface {
	Create(ctx context.Context, app *application.GuideApplication) (uuid.UUID, error)
}
