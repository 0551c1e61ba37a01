package request

import (
	"tourmate/internal/usecase/commands"
)

type BookTourRequest struct {
	DestinationID int64  `json:"destination_id" binding:"required"`
	GuideID       int64  `json:"guide_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Guests        int    `json:"guests" binding:"required,min=1"`
}

func (r *BookTourRequest) ToCommand() commands.BookTourRequest {
	return commands.BookTourRequest{
		DestinationID: r.DestinationID,
		GuideID:       r.GuideID,
		CustomerName:  r.Name,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Guests:        r.Guests,
	}
}

type SubmitReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"max=1000"`
}

func (r *SubmitReviewRequest) ToCommand() commands.SubmitReviewRequest {
	return commands.SubmitReviewRequest{
		Rating: r.Rating,
		Text:   r.Text,
	}
}
