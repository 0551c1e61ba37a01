package seed

import (
	"time"

	"tourmate/internal/domain/guide"
	"tourmate/internal/domain/tour"
	"tourmate/internal/pkg/errs"
)

type bookedTourSeed struct {
	id            int64
	destinationID int64
	guideID       int64
	startDate     string
	endDate       string
	reviewRating  int // zero means no review
	reviewText    string
}

var bookedTourSeeds = []bookedTourSeed{
	{id: 1, destinationID: 1, guideID: 1, startDate: "2023-07-01", endDate: "2023-07-01"},
	{id: 2, destinationID: 3, guideID: 2, startDate: "2023-08-15", endDate: "2023-08-15"},
	{
		id: 3, destinationID: 2, guideID: 1,
		startDate: "2023-06-01", endDate: "2023-06-02",
		reviewRating: 5,
		reviewText:   "Amazing experience! The scenery was breathtaking and the guide was very knowledgeable.",
	},
}

// BookedTours materializes the seed bookings against an already-built
// catalog; destination name, image, duration and price are copied from
// the referenced destination exactly as the booking flow does. The
// status projection is derived at load time against now.
func BookedTours(guides []*guide.TourGuide, now time.Time) ([]*tour.BookedTour, error) {
	byID := make(map[int64]*guide.TourGuide, len(guides))
	for _, g := range guides {
		byID[g.ID()] = g
	}

	tours := make([]*tour.BookedTour, 0, len(bookedTourSeeds))
	for _, ts := range bookedTourSeeds {
		g, ok := byID[ts.guideID]
		if !ok {
			return nil, errs.New("seed booked tour references unknown guide")
		}
		dest, ok := g.Destination(ts.destinationID)
		if !ok {
			return nil, errs.New("seed booked tour references unknown destination")
		}

		dates, err := tour.ParseDateRange(ts.startDate, ts.endDate)
		if err != nil {
			return nil, errs.Wrap(err, "invalid seed booked tour dates")
		}
		price, err := tour.NewPrice(dest.PriceVND())
		if err != nil {
			return nil, errs.Wrap(err, "invalid seed booked tour price")
		}

		var review *tour.Review
		if ts.reviewRating != 0 {
			r, err := tour.NewReview(ts.reviewRating, ts.reviewText)
			if err != nil {
				return nil, errs.Wrap(err, "invalid seed booked tour review")
			}
			review = &r
		}

		tours = append(tours, tour.ReconstructBookedTour(
			ts.id, dest.ID(),
			dest.Name(), dest.Image(),
			dates,
			tour.DeriveStatus(dates, now),
			review,
			g,
			dest.DurationDays(),
			price,
		))
	}
	return tours, nil
}
