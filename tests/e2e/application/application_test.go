//go:build e2e

package application_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tourmate/internal/handler/dto/response"
	"tourmate/tests/common/builder"
	"tourmate/tests/common/httptest"
	"tourmate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const applicationsURL = "/api/guide-applications"

type ApplicationSuite struct {
	e2e.SharedSuite
}

func TestApplicationSuite(t *testing.T) {
	suite.Run(t, new(ApplicationSuite))
}

func (s *ApplicationSuite) TestSubmitApplication() {
	s.Run("submission lands in the database as pending", func() {
		reqBody := builder.NewApplicationBuilder().BuildRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applicationsURL, reqBody)

		var body response.SubmitApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.NotEqual(uuid.Nil, body.ApplicationID)
		s.Equal("pending", body.Status)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var (
			fullName, email, status string
			submittedAt             time.Time
		)
		err := s.DB.QueryRow(ctx,
			"SELECT full_name, email, status, submitted_at FROM guide_applications WHERE id = $1",
			body.ApplicationID,
		).Scan(&fullName, &email, &status, &submittedAt)
		s.Require().NoError(err)
		s.Equal(reqBody.FullName, fullName)
		s.Equal(reqBody.Email, email)
		s.Equal("pending", status)
		s.WithinDuration(time.Now(), submittedAt, time.Minute)
	})

	s.Run("each submission creates a distinct row", func() {
		reqBody := builder.NewApplicationBuilder().BuildRequestDTO()

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applicationsURL, reqBody)
		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applicationsURL, reqBody)
		httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), second, http.StatusCreated, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var count int
		err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM guide_applications").Scan(&count)
		s.Require().NoError(err)
		s.Equal(2, count)
	})

	s.Run("invalid payload writes nothing", func() {
		reqBody := builder.NewApplicationBuilder().WithEmail("no-at-sign").BuildRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applicationsURL, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var count int
		err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM guide_applications").Scan(&count)
		s.Require().NoError(err)
		s.Zero(count)
	})
}
