//go:build unit || e2e

package builder

import (
	"time"

	"tourmate/internal/domain/application"
	reqdto "tourmate/internal/handler/dto/request"
	"tourmate/internal/usecase/commands"
)

type ApplicationBuilder struct {
	FullName    string
	Email       string
	Phone       string
	City        string
	Experience  string
	SubmittedAt time.Time
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		FullName:    "Pham Thu Ha",
		Email:       "ha.pham@example.com",
		Phone:       "+84 912 345 678",
		City:        "Da Nang",
		Experience:  "5 years leading coastal tours",
		SubmittedAt: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

func (b *ApplicationBuilder) WithFullName(name string) *ApplicationBuilder {
	b.FullName = name
	return b
}

func (b *ApplicationBuilder) WithEmail(email string) *ApplicationBuilder {
	b.Email = email
	return b
}

func (b *ApplicationBuilder) WithPhone(phone string) *ApplicationBuilder {
	b.Phone = phone
	return b
}

func (b *ApplicationBuilder) BuildDomain() (*application.GuideApplication, error) {
	return application.NewGuideApplication(
		b.FullName, b.Email, b.Phone, b.City, b.Experience, b.SubmittedAt,
	)
}

func (b *ApplicationBuilder) BuildRequestDTO() reqdto.SubmitApplicationRequest {
	return reqdto.SubmitApplicationRequest{
		FullName:   b.FullName,
		Email:      b.Email,
		Phone:      b.Phone,
		City:       b.City,
		Experience: b.Experience,
	}
}

func (b *ApplicationBuilder) BuildCommand() commands.SubmitApplicationRequest {
	return commands.SubmitApplicationRequest{
		FullName:   b.FullName,
		Email:      b.Email,
		Phone:      b.Phone,
		City:       b.City,
		Experience: b.Experience,
	}
}
