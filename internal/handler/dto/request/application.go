package request

import (
	"tourmate/internal/usecase/commands"
)

type SubmitApplicationRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	City       string `json:"city"`
	Experience string `json:"experience"`
}

func (r *SubmitApplicationRequest) ToCommand() commands.SubmitApplicationRequest {
	return commands.SubmitApplicationRequest{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		City:       r.City,
		Experience: r.Experience,
	}
}
