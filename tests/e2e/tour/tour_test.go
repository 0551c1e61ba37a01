//go:build e2e

package tour_test

import (
	"fmt"
	"net/http"
	"testing"

	"tourmate/internal/handler/dto/request"
	"tourmate/internal/handler/dto/response"
	"tourmate/tests/common/httptest"
	"tourmate/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	toursURL        = "/api/tours"
	guidesURL       = "/api/guides"
	destinationsURL = "/api/destinations"
)

type TourSuite struct {
	e2e.SharedSuite
}

func TestTourSuite(t *testing.T) {
	suite.Run(t, new(TourSuite))
}

func (s *TourSuite) TestBookingFlow() {
	s.Run("seeded tours are listed in booking order", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, toursURL, nil)

		var body struct {
			Tours []response.BookedTourResponse `json:"tours"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Tours, 3)
		s.Equal(int64(1), body.Tours[0].ID)
		s.Equal("Halong Bay Cruise", body.Tours[2].Destination)
		s.Equal("Completed", body.Tours[2].Status)
		s.Require().NotNil(body.Tours[2].Review)
		s.Equal(5, body.Tours[2].Review.Rating)
	})

	s.Run("booking then reviewing a tour", func() {
		bookReq := request.BookTourRequest{
			DestinationID: 1,
			GuideID:       1,
			Name:          "Tran Minh",
			CheckIn:       "2030-03-10",
			CheckOut:      "2030-03-12",
			Guests:        2,
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, toursURL, bookReq)

		var created response.BookedTourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal(int64(4), created.ID, "ids continue past the seed data")
		s.Equal("Hanoi Old Quarter Walk", created.Destination)
		s.Equal("Upcoming", created.Status)
		s.Nil(created.Review)

		reviewReq := request.SubmitReviewRequest{Rating: 4, Text: "Narrow streets, amazing food"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("%s/%d/review", toursURL, created.ID), reviewReq)

		var reviewed response.BookedTourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &reviewed)
		s.Require().NotNil(reviewed.Review)
		s.Equal(4, reviewed.Review.Rating)
		s.Equal("Narrow streets, amazing food", reviewed.Review.Text)
	})

	s.Run("booking a destination owned by another guide fails", func() {
		bookReq := request.BookTourRequest{
			DestinationID: 3, // belongs to guide 2
			GuideID:       1,
			Name:          "Tran Minh",
			CheckIn:       "2030-03-10",
			CheckOut:      "2030-03-12",
			Guests:        2,
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, toursURL, bookReq)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking failed")
	})

	s.Run("reviewing an unknown tour returns 404", func() {
		reviewReq := request.SubmitReviewRequest{Rating: 3}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, toursURL+"/999/review", reviewReq)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}

func (s *TourSuite) TestCatalogEndpoints() {
	s.Run("guide search", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, guidesURL+"?search=street+food", nil)

		var body struct {
			Guides []response.GuideResponse `json:"guides"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Guides, 1)
		s.Equal("Tan Dinh Nguyen", body.Guides[0].Name)
		s.Len(body.Guides[0].Destinations, 2)
	})

	s.Run("destination listing with filter", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, destinationsURL+"?name=halong", nil)

		var body response.DestinationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("Halong Bay Cruise", body.Items[0].Name)
		s.Equal(1, body.Total)
	})

	s.Run("destination reviews", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, destinationsURL+"/1/reviews", nil)

		var body struct {
			Reviews []response.DestinationReviewResponse `json:"reviews"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotEmpty(body.Reviews)
	})
}
