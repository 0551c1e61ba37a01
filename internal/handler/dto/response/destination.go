package response

import (
	"tourmate/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DestinationResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       *float64 `json:"rating,omitempty"`
	PriceVND     int64    `json:"price_vnd"`
	DurationDays int      `json:"duration_days"`
	MaxGroupSize *int     `json:"max_group_size,omitempty"`
	GuideID      int64    `json:"guide_id"`
}

type DestinationReviewResponse struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type DestinationPageResponse struct {
	Items      []DestinationResponse `json:"items"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
}

func FromDestinationPage(v *queries.DestinationPage) *DestinationPageResponse {
	var resp DestinationPageResponse
	_ = copier.Copy(&resp, v)
	if resp.Items == nil {
		resp.Items = []DestinationResponse{}
	}
	return &resp
}

func FromDestinationReviews(views []queries.DestinationReviewView) []DestinationReviewResponse {
	res := make([]DestinationReviewResponse, len(views))
	_ = copier.Copy(&res, &views)
	return res
}
