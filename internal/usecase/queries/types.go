package queries

// View structs are the read-optimized projections handed to the
// presentation layer; dates are YYYY-MM-DD strings on the wire.

type GuideView struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Avatar       string            `json:"avatar"`
	Rating       float64           `json:"rating"`
	TotalReviews int               `json:"total_reviews"`
	TotalTrips   int               `json:"total_trips"`
	Languages    []string          `json:"languages"`
	Location     string            `json:"location"`
	Specialties  []string          `json:"specialties"`
	Bio          string            `json:"bio,omitempty"`
	Destinations []DestinationView `json:"destinations"`
}

type GuideSummaryView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

type DestinationView struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       *float64 `json:"rating,omitempty"`
	PriceVND     int64    `json:"price_vnd"`
	DurationDays int      `json:"duration_days"`
	MaxGroupSize *int     `json:"max_group_size,omitempty"`
	GuideID      int64    `json:"guide_id"`
}

type DestinationReviewView struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type TourReviewView struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type BookedTourView struct {
	ID            int64            `json:"id"`
	DestinationID int64            `json:"destination_id"`
	Destination   string           `json:"destination"`
	Image         string           `json:"image"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	Status        string           `json:"status"`
	Review        *TourReviewView  `json:"review,omitempty"`
	Guide         GuideSummaryView `json:"tour_guide"`
	DurationDays  int              `json:"duration_days"`
	PriceVND      int64            `json:"price_vnd"`
}

type DestinationPage struct {
	Items      []DestinationView `json:"items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

const (
	DefaultPageLimit = 9
	MaxPageLimit     = 100
)

// NormalizePage clamps paging parameters the way the catalog UI did:
// nine items per page by default, page numbers starting at one.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
