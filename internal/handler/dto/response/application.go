package response

import "github.com/google/uuid"

type SubmitApplicationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Status        string    `json:"status"`
}
