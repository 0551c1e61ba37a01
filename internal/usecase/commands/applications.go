package commands

import (
	"context"

	"tourmate/internal/domain/application"
	"tourmate/internal/pkg/clock"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	FullName   string
	Email      string
	Phone      string
	City       string
	Experience string
}

type SubmitApplicationResult struct {
	ApplicationID uuid.UUID
}

type ApplicationCommands interface {
	SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*SubmitApplicationResult, error)
}

type applicationCommandsImpl struct {
	repo  GuideApplicationRepository
	clock clock.Clock
}

func NewApplicationCommands(repo GuideApplicationRepository, clk clock.Clock) ApplicationCommands {
	return &applicationCommandsImpl{repo: repo, clock: clk}
}

func (uc *applicationCommandsImpl) SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*SubmitApplicationResult, error) {
	app, err := application.NewGuideApplication(
		req.FullName, req.Email, req.Phone, req.City, req.Experience,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	id, err := uc.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	return &SubmitApplicationResult{ApplicationID: id}, nil
}
