package queries

import (
	"time"

	"tourmate/internal/domain/guide"
	"tourmate/internal/domain/tour"
)

func guideToView(g *guide.TourGuide) *GuideView {
	dests := g.Destinations()
	destViews := make([]DestinationView, len(dests))
	for i, d := range dests {
		destViews[i] = destinationToView(d)
	}
	return &GuideView{
		ID:           g.ID(),
		Name:         g.Name(),
		Avatar:       g.Avatar(),
		Rating:       g.Rating().Value(),
		TotalReviews: g.TotalReviews(),
		TotalTrips:   g.TotalTrips(),
		Languages:    g.Languages(),
		Location:     g.Location(),
		Specialties:  g.Specialties(),
		Bio:          g.Bio(),
		Destinations: destViews,
	}
}

func destinationToView(d *guide.Destination) DestinationView {
	var rating *float64
	if d.Rating() != nil {
		v := d.Rating().Value()
		rating = &v
	}
	return DestinationView{
		ID:           d.ID(),
		Name:         d.Name(),
		Image:        d.Image(),
		Rating:       rating,
		PriceVND:     d.PriceVND(),
		DurationDays: d.DurationDays(),
		MaxGroupSize: d.MaxGroupSize(),
		GuideID:      d.GuideID(),
	}
}

// tourToView re-derives the status against now; the stored projection
// is never trusted at read time.
func tourToView(t *tour.BookedTour, now time.Time) *BookedTourView {
	var review *TourReviewView
	if r := t.Review(); r != nil {
		review = &TourReviewView{Rating: r.Rating().Value(), Text: r.Text()}
	}
	g := t.Guide()
	return &BookedTourView{
		ID:            t.ID(),
		DestinationID: t.DestinationID(),
		Destination:   t.DestinationName(),
		Image:         t.Image(),
		StartDate:     t.Dates().Start().Format(tour.DateLayout),
		EndDate:       t.Dates().End().Format(tour.DateLayout),
		Status:        t.StatusAt(now).String(),
		Review:        review,
		Guide: GuideSummaryView{
			ID:       g.ID(),
			Name:     g.Name(),
			Avatar:   g.Avatar(),
			Location: g.Location(),
		},
		DurationDays: t.DurationDays(),
		PriceVND:     t.Price().Amount(),
	}
}
