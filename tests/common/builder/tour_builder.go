//go:build unit || e2e

package builder

import (
	"tourmate/internal/domain/guide"
	"tourmate/internal/domain/tour"
	reqdto "tourmate/internal/handler/dto/request"
	"tourmate/internal/usecase/queries"
)

type TourBuilder struct {
	ID            int64
	DestinationID int64
	GuideID       int64
	Name          string
	CheckIn       string
	CheckOut      string
	Guests        int
	Status        tour.Status
	Rating        int
	Text          string
	Guide         *guide.TourGuide
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		ID:            1,
		DestinationID: 1,
		GuideID:       1,
		Name:          "Tran Minh",
		CheckIn:       "2024-03-10",
		CheckOut:      "2024-03-12",
		Guests:        2,
		Status:        tour.StatusUpcoming,
		Rating:        5,
		Text:          "Unforgettable trip!",
	}
}

func (b *TourBuilder) WithID(id int64) *TourBuilder {
	b.ID = id
	return b
}

func (b *TourBuilder) WithDestinationID(id int64) *TourBuilder {
	b.DestinationID = id
	return b
}

func (b *TourBuilder) WithGuideID(id int64) *TourBuilder {
	b.GuideID = id
	return b
}

func (b *TourBuilder) WithDates(checkIn, checkOut string) *TourBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *TourBuilder) WithGuests(guests int) *TourBuilder {
	b.Guests = guests
	return b
}

func (b *TourBuilder) WithGuide(g *guide.TourGuide) *TourBuilder {
	b.Guide = g
	return b
}

func (b *TourBuilder) WithStatus(status tour.Status) *TourBuilder {
	b.Status = status
	return b
}

func (b *TourBuilder) guideOrDefault() *guide.TourGuide {
	if b.Guide != nil {
		return b.Guide
	}
	dest := NewDestinationBuilder().WithID(b.DestinationID).WithGuideID(b.GuideID).MustBuild()
	return NewGuideBuilder().WithID(b.GuideID).WithDestinations(dest).MustBuild()
}

// BuildDomain reconstructs a persisted record, not a fresh booking, so
// the id and status come straight from the builder.
func (b *TourBuilder) BuildDomain() *tour.BookedTour {
	g := b.guideOrDefault()
	dest, ok := g.Destination(b.DestinationID)
	if !ok {
		panic("builder guide does not own the destination")
	}
	dates, err := tour.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	price, err := tour.NewPrice(dest.PriceVND())
	if err != nil {
		panic(err)
	}
	return tour.ReconstructBookedTour(
		b.ID, dest.ID(), dest.Name(), dest.Image(),
		dates, b.Status, nil, g, dest.DurationDays(), price,
	)
}

func (b *TourBuilder) BuildBookRequestDTO() reqdto.BookTourRequest {
	return reqdto.BookTourRequest{
		DestinationID: b.DestinationID,
		GuideID:       b.GuideID,
		Name:          b.Name,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
	}
}

func (b *TourBuilder) BuildReviewRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		Rating: b.Rating,
		Text:   b.Text,
	}
}

func (b *TourBuilder) BuildView() *queries.BookedTourView {
	g := b.guideOrDefault()
	dest, ok := g.Destination(b.DestinationID)
	if !ok {
		panic("builder guide does not own the destination")
	}
	return &queries.BookedTourView{
		ID:            b.ID,
		DestinationID: dest.ID(),
		Destination:   dest.Name(),
		Image:         dest.Image(),
		StartDate:     b.CheckIn,
		EndDate:       b.CheckOut,
		Status:        string(b.Status),
		Guide: queries.GuideSummaryView{
			ID:       g.ID(),
			Name:     g.Name(),
			Avatar:   g.Avatar(),
			Location: g.Location(),
		},
		DurationDays: dest.DurationDays(),
		PriceVND:     dest.PriceVND(),
	}
}
