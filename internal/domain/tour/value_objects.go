package tour

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout          = "2006-01-02"
	MaxReviewTextLength = 1000
)

var (
	ErrInvalidDate       = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrEndBeforeStart    = errors.New("end date must not be before start date")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrReviewTextTooLong = errors.New("review text exceeds maximum length")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// DateRange is a pair of UTC calendar dates, inclusive on both ends.
// A tour runs for the entirety of its end date, so a single-day tour
// (start == end) is in progress for that whole day.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: start, end: end}, nil
}

// ParseDateRange validates the date-string shape at booking-creation
// time so that malformed input never reaches status derivation.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.ParseInLocation(DateLayout, startStr, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	end, err := time.ParseInLocation(DateLayout, endStr, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// EndExclusive is the first instant after the range: midnight of the
// day following the end date.
func (r DateRange) EndExclusive() time.Time {
	return r.end.AddDate(0, 0, 1)
}

func (r DateRange) Days() int {
	return int(r.EndExclusive().Sub(r.start).Hours()/24 + 0.5)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Review is replaced wholesale on every submission; there is no
// partial-field update.
type Review struct {
	rating Rating
	text   string
}

func NewReview(ratingValue int, text string) (Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return Review{}, err
	}
	text = strings.TrimSpace(text)
	if len(text) > MaxReviewTextLength {
		return Review{}, ErrReviewTextTooLong
	}
	return Review{rating: rating, text: text}, nil
}

func (r Review) Rating() Rating { return r.rating }
func (r Review) Text() string   { return r.text }

// Price is a whole-VND amount; the currency carries no minor units.
type Price struct {
	amount int64
}

func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() int64 { return p.amount }
