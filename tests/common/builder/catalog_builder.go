//go:build unit || e2e

package builder

import (
	"tourmate/internal/domain/guide"
)

type DestinationBuilder struct {
	ID           int64
	Name         string
	Image        string
	Rating       *guide.Score
	PriceVND     int64
	DurationDays int
	MaxGroupSize *int
	Reviews      []guide.DestinationReview
	GuideID      int64
}

func NewDestinationBuilder() *DestinationBuilder {
	maxGroup := 12
	return &DestinationBuilder{
		ID:           1,
		Name:         "Sapa Trekking Adventure",
		Image:        "https://example.com/sapa.jpg",
		PriceVND:     2_500_000,
		DurationDays: 3,
		MaxGroupSize: &maxGroup,
		GuideID:      1,
	}
}

func (b *DestinationBuilder) WithID(id int64) *DestinationBuilder {
	b.ID = id
	return b
}

func (b *DestinationBuilder) WithName(name string) *DestinationBuilder {
	b.Name = name
	return b
}

func (b *DestinationBuilder) WithGuideID(guideID int64) *DestinationBuilder {
	b.GuideID = guideID
	return b
}

func (b *DestinationBuilder) WithPriceVND(price int64) *DestinationBuilder {
	b.PriceVND = price
	return b
}

func (b *DestinationBuilder) WithDurationDays(days int) *DestinationBuilder {
	b.DurationDays = days
	return b
}

func (b *DestinationBuilder) WithMaxGroupSize(size int) *DestinationBuilder {
	b.MaxGroupSize = &size
	return b
}

func (b *DestinationBuilder) WithoutMaxGroupSize() *DestinationBuilder {
	b.MaxGroupSize = nil
	return b
}

func (b *DestinationBuilder) WithReview(rating int, text string) *DestinationBuilder {
	r, err := guide.NewDestinationReview(rating, text)
	if err != nil {
		panic(err)
	}
	b.Reviews = append(b.Reviews, r)
	return b
}

func (b *DestinationBuilder) Build() (*guide.Destination, error) {
	return guide.NewDestination(
		b.ID, b.Name, b.Image, b.Rating,
		b.PriceVND, b.DurationDays, b.MaxGroupSize,
		b.Reviews, b.GuideID,
	)
}

func (b *DestinationBuilder) MustBuild() *guide.Destination {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

type GuideBuilder struct {
	ID           int64
	Name         string
	Avatar       string
	Rating       float64
	TotalReviews int
	TotalTrips   int
	Languages    []string
	Location     string
	Specialties  []string
	Bio          string
	Destinations []*guide.Destination
}

func NewGuideBuilder() *GuideBuilder {
	return &GuideBuilder{
		ID:           1,
		Name:         "Linh Nguyen",
		Avatar:       "https://example.com/linh.jpg",
		Rating:       4.8,
		TotalReviews: 120,
		TotalTrips:   85,
		Languages:    []string{"Vietnamese", "English"},
		Location:     "Hanoi",
		Specialties:  []string{"Trekking", "Culture"},
		Bio:          "Mountain trekking specialist based in Hanoi.",
	}
}

func (b *GuideBuilder) WithID(id int64) *GuideBuilder {
	b.ID = id
	return b
}

func (b *GuideBuilder) WithName(name string) *GuideBuilder {
	b.Name = name
	return b
}

func (b *GuideBuilder) WithLocation(location string) *GuideBuilder {
	b.Location = location
	return b
}

func (b *GuideBuilder) WithSpecialties(specialties ...string) *GuideBuilder {
	b.Specialties = specialties
	return b
}

func (b *GuideBuilder) WithDestinations(dests ...*guide.Destination) *GuideBuilder {
	b.Destinations = dests
	return b
}

func (b *GuideBuilder) Build() (*guide.TourGuide, error) {
	score, err := guide.NewScore(b.Rating)
	if err != nil {
		return nil, err
	}
	return guide.NewTourGuide(
		b.ID, b.Name, b.Avatar, score,
		b.TotalReviews, b.TotalTrips,
		b.Languages, b.Location, b.Specialties, b.Bio,
		b.Destinations,
	)
}

func (b *GuideBuilder) MustBuild() *guide.TourGuide {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
