package tour

import (
	"errors"
	"strings"
	"time"

	"tourmate/internal/domain/guide"
)

var (
	ErrEmptyDestination = errors.New("destination name cannot be empty")
	ErrMissingGuide     = errors.New("booked tour must carry its guide")
	ErrInvalidDuration  = errors.New("duration must be at least one day")
)

// BookedTour is a traveller's commitment to a destination over a date
// range. Destination name, image, guide, duration and price are
// denormalized copies taken at booking time; destinationID is the
// authoritative link back into the catalog. The status field is a
// cached projection of DeriveStatus and is never written directly.
type BookedTour struct {
	id              int64
	destinationID   int64
	destinationName string
	image           string
	dates           DateRange
	status          Status
	review          *Review
	guide           *guide.TourGuide
	durationDays    int
	price           Price
}

// NewBookedTour builds a tour for the booking flows. The id is left
// zero; the store assigns the next monotonic value on insert.
func NewBookedTour(
	destinationID int64,
	destinationName, image string,
	dates DateRange,
	g *guide.TourGuide,
	durationDays int,
	price Price,
	now time.Time,
) (*BookedTour, error) {
	if strings.TrimSpace(destinationName) == "" {
		return nil, ErrEmptyDestination
	}
	if g == nil {
		return nil, ErrMissingGuide
	}
	if durationDays < 1 {
		return nil, ErrInvalidDuration
	}
	return &BookedTour{
		destinationID:   destinationID,
		destinationName: destinationName,
		image:           image,
		dates:           dates,
		status:          DeriveStatus(dates, now),
		guide:           g,
		durationDays:    durationDays,
		price:           price,
	}, nil
}

func ReconstructBookedTour(
	id, destinationID int64,
	destinationName, image string,
	dates DateRange,
	status Status,
	review *Review,
	g *guide.TourGuide,
	durationDays int,
	price Price,
) *BookedTour {
	return &BookedTour{
		id:              id,
		destinationID:   destinationID,
		destinationName: destinationName,
		image:           image,
		dates:           dates,
		status:          status,
		review:          review,
		guide:           g,
		durationDays:    durationDays,
		price:           price,
	}
}

func (t *BookedTour) ID() int64              { return t.id }
func (t *BookedTour) DestinationID() int64   { return t.destinationID }
func (t *BookedTour) DestinationName() string { return t.destinationName }
func (t *BookedTour) Image() string          { return t.image }
func (t *BookedTour) Dates() DateRange       { return t.dates }
func (t *BookedTour) Status() Status         { return t.status }
func (t *BookedTour) Guide() *guide.TourGuide { return t.guide }
func (t *BookedTour) DurationDays() int      { return t.durationDays }
func (t *BookedTour) Price() Price           { return t.price }

// Review returns nil until a traveller submits one.
func (t *BookedTour) Review() *Review {
	if t.review == nil {
		return nil
	}
	r := *t.review
	return &r
}

func (t *BookedTour) StatusAt(now time.Time) Status {
	return DeriveStatus(t.dates, now)
}

// WithID returns a copy carrying the store-assigned identifier.
func (t *BookedTour) WithID(id int64) *BookedTour {
	c := *t
	c.id = id
	return &c
}

// WithStatus returns a copy with the cached projection refreshed.
func (t *BookedTour) WithStatus(now time.Time) *BookedTour {
	c := *t
	c.status = DeriveStatus(t.dates, now)
	return &c
}

// WithReview returns a copy whose review is replaced wholesale; all
// other fields are untouched.
func (t *BookedTour) WithReview(r Review) *BookedTour {
	c := *t
	c.review = &r
	return &c
}
