package guide

import "errors"

var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidScore       = errors.New("aggregate rating must be between 0.0 and 5.0")
	ErrInvalidReviewScore = errors.New("review rating must be between 1 and 5")
	ErrNegativeCount      = errors.New("count cannot be negative")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidDuration    = errors.New("duration must be at least one day")
	ErrInvalidGroupSize   = errors.New("max group size must be positive")
)

// Score is an aggregate rating accumulated over many reviews, so it
// ranges from 0.0 (no reviews) to 5.0, unlike a single review's 1-5.
type Score struct {
	value float64
}

func NewScore(v float64) (Score, error) {
	if v < 0.0 || v > 5.0 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() float64 { return s.value }

// DestinationReview is a curated textual review embedded in the seed
// catalog, distinct from the reviews travellers attach to their own
// booked tours.
type DestinationReview struct {
	rating int
	text   string
}

func NewDestinationReview(rating int, text string) (DestinationReview, error) {
	if rating < 1 || rating > 5 {
		return DestinationReview{}, ErrInvalidReviewScore
	}
	return DestinationReview{rating: rating, text: text}, nil
}

func (r DestinationReview) Rating() int  { return r.rating }
func (r DestinationReview) Text() string { return r.text }
