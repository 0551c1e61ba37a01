package guide

import (
	"errors"
	"strings"
)

var (
	ErrGuideIDMismatch    = errors.New("destination guide id does not reference its owning guide")
	ErrDuplicateTourID    = errors.New("duplicate destination id within guide catalog")
	ErrInvalidGuideID     = errors.New("guide id must be positive")
	ErrInvalidDestination = errors.New("destination id must be positive")
)

// Destination is a bookable trip package owned by exactly one guide.
type Destination struct {
	id           int64
	name         string
	image        string
	rating       *Score
	priceVND     int64
	durationDays int
	maxGroupSize *int
	reviews      []DestinationReview
	guideID      int64
}

func NewDestination(
	id int64,
	name, image string,
	rating *Score,
	priceVND int64,
	durationDays int,
	maxGroupSize *int,
	reviews []DestinationReview,
	guideID int64,
) (*Destination, error) {
	if id <= 0 {
		return nil, ErrInvalidDestination
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if priceVND < 0 {
		return nil, ErrNegativePrice
	}
	if durationDays < 1 {
		return nil, ErrInvalidDuration
	}
	if maxGroupSize != nil && *maxGroupSize < 1 {
		return nil, ErrInvalidGroupSize
	}
	return &Destination{
		id:           id,
		name:         name,
		image:        image,
		rating:       rating,
		priceVND:     priceVND,
		durationDays: durationDays,
		maxGroupSize: maxGroupSize,
		reviews:      reviews,
		guideID:      guideID,
	}, nil
}

func (d *Destination) ID() int64          { return d.id }
func (d *Destination) Name() string       { return d.name }
func (d *Destination) Image() string      { return d.image }
func (d *Destination) Rating() *Score     { return d.rating }
func (d *Destination) PriceVND() int64    { return d.priceVND }
func (d *Destination) DurationDays() int  { return d.durationDays }
func (d *Destination) MaxGroupSize() *int { return d.maxGroupSize }
func (d *Destination) GuideID() int64     { return d.guideID }

// Reviews returns a defensive copy; the embedded list is immutable
// once the catalog is constructed.
func (d *Destination) Reviews() []DestinationReview {
	out := make([]DestinationReview, len(d.reviews))
	copy(out, d.reviews)
	return out
}

// FitsGroup reports whether the requested head count is within the
// destination's capacity. Destinations without a max accept any size.
func (d *Destination) FitsGroup(guests int) bool {
	if guests < 1 {
		return false
	}
	return d.maxGroupSize == nil || guests <= *d.maxGroupSize
}

// TourGuide owns an ordered catalog of destinations. The guideID on
// each destination must reference its owner; this is validated here
// at construction rather than by any foreign-key mechanism.
type TourGuide struct {
	id           int64
	name         string
	avatar       string
	rating       Score
	totalReviews int
	totalTrips   int
	languages    []string
	location     string
	specialties  []string
	bio          string
	destinations []*Destination
}

func NewTourGuide(
	id int64,
	name, avatar string,
	rating Score,
	totalReviews, totalTrips int,
	languages []string,
	location string,
	specialties []string,
	bio string,
	destinations []*Destination,
) (*TourGuide, error) {
	if id <= 0 {
		return nil, ErrInvalidGuideID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if totalReviews < 0 || totalTrips < 0 {
		return nil, ErrNegativeCount
	}
	seen := make(map[int64]struct{}, len(destinations))
	for _, d := range destinations {
		if d.GuideID() != id {
			return nil, ErrGuideIDMismatch
		}
		if _, dup := seen[d.ID()]; dup {
			return nil, ErrDuplicateTourID
		}
		seen[d.ID()] = struct{}{}
	}
	return &TourGuide{
		id:           id,
		name:         name,
		avatar:       avatar,
		rating:       rating,
		totalReviews: totalReviews,
		totalTrips:   totalTrips,
		languages:    languages,
		location:     location,
		specialties:  specialties,
		bio:          bio,
		destinations: destinations,
	}, nil
}

func (g *TourGuide) ID() int64             { return g.id }
func (g *TourGuide) Name() string          { return g.name }
func (g *TourGuide) Avatar() string        { return g.avatar }
func (g *TourGuide) Rating() Score         { return g.rating }
func (g *TourGuide) TotalReviews() int     { return g.totalReviews }
func (g *TourGuide) TotalTrips() int       { return g.totalTrips }
func (g *TourGuide) Languages() []string   { return g.languages }
func (g *TourGuide) Location() string      { return g.location }
func (g *TourGuide) Specialties() []string { return g.specialties }
func (g *TourGuide) Bio() string           { return g.bio }

func (g *TourGuide) Destinations() []*Destination {
	out := make([]*Destination, len(g.destinations))
	copy(out, g.destinations)
	return out
}

func (g *TourGuide) Destination(id int64) (*Destination, bool) {
	for _, d := range g.destinations {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// MatchesSearch performs the catalog's case-insensitive substring
// match over name, location, and specialties.
func (g *TourGuide) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(g.name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(g.location), term) {
		return true
	}
	for _, s := range g.specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
