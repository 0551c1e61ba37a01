package response

import (
	"tourmate/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TourReviewResponse struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type GuideSummaryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

type BookedTourResponse struct {
	ID            int64                `json:"id"`
	DestinationID int64                `json:"destination_id"`
	Destination   string               `json:"destination"`
	Image         string               `json:"image"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Status        string               `json:"status"`
	Review        *TourReviewResponse  `json:"review,omitempty"`
	Guide         GuideSummaryResponse `json:"tour_guide"`
	DurationDays  int                  `json:"duration_days"`
	PriceVND      int64                `json:"price_vnd"`
}

type BookTourResponse struct {
	TourID int64 `json:"tour_id"`
}

func FromBookedTourView(v *queries.BookedTourView) *BookedTourResponse {
	var resp BookedTourResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookedTourList(views []*queries.BookedTourView) []*BookedTourResponse {
	res := make([]*BookedTourResponse, len(views))
	for i, v := range views {
		res[i] = FromBookedTourView(v)
	}
	return res
}
