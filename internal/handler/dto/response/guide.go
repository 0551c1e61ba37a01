package response

import (
	"tourmate/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GuideResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Avatar       string                `json:"avatar"`
	Rating       float64               `json:"rating"`
	TotalReviews int                   `json:"total_reviews"`
	TotalTrips   int                   `json:"total_trips"`
	Languages    []string              `json:"languages"`
	Location     string                `json:"location"`
	Specialties  []string              `json:"specialties"`
	Bio          string                `json:"bio,omitempty"`
	Destinations []DestinationResponse `json:"destinations"`
}

func FromGuideView(v *queries.GuideView) *GuideResponse {
	var resp GuideResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromGuideList(views []*queries.GuideView) []*GuideResponse {
	res := make([]*GuideResponse, len(views))
	for i, v := range views {
		res[i] = FromGuideView(v)
	}
	return res
}
