//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"tourmate/internal/handler/api"
	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/usecase/commands"
	"tourmate/internal/usecase/queries"
	"tourmate/tests/common/builder"
	"tourmate/tests/common/httptest"
	"tourmate/tests/common/testutil"
	commandsmock "tourmate/tests/mock/commands"
	queriesmock "tourmate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TourHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTourCommands
	mockQueries  *queriesmock.MockTourQueries
	handler      *api.TourHandler
}

func (s *TourHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTourCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTourQueries(s.mockCtrl)
	s.handler = api.NewTourHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/tours", s.handler.List)
	s.router.POST("/tours", s.handler.Create)
	s.router.GET("/tours/:id", s.handler.Get)
	s.router.PUT("/tours/:id/review", s.handler.SubmitReview)
}

func (s *TourHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourHandlerTestSuite))
}

type testCaseTour struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *TourHandlerTestSuite) TestList() {
	s.Run("success: returns wrapped tour list", func() {
		views := []*queries.BookedTourView{
			builder.NewTourBuilder().WithID(1).BuildView(),
			builder.NewTourBuilder().WithID(2).BuildView(),
		}
		s.mockQueries.EXPECT().ListBookedTours(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours", nil)

		var body struct {
			Tours []resdto.BookedTourResponse `json:"tours"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Tours, 2)
		s.Equal(int64(1), body.Tours[0].ID)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListBookedTours(gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list tours")
	})
}

func (s *TourHandlerTestSuite) TestGet() {
	s.Run("success: returns the tour", func() {
		view := builder.NewTourBuilder().WithID(7).BuildView()
		s.mockQueries.EXPECT().GetBookedTour(gomock.Any(), int64(7)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/7", nil)

		var body resdto.BookedTourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("Upcoming", body.Status)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().GetBookedTour(gomock.Any(), int64(99)).
			Return(nil, commands.ErrTourNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}

func (s *TourHandlerTestSuite) TestCreate() {
	url := "/tours"
	reqBody := builder.NewTourBuilder().BuildBookRequestDTO()
	returnView := builder.NewTourBuilder().WithID(4).BuildView()

	s.Run("success: returns 201 with the created tour", func() {
		s.mockCommands.EXPECT().BookTour(gomock.Any(), gomock.Any()).
			Return(&commands.BookTourResult{TourID: 4}, nil).Times(1)
		s.mockQueries.EXPECT().GetBookedTour(gomock.Any(), int64(4)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookedTourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(4), body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseTour{
			{name: "missing destination_id", mutate: testutil.Field("destination_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing guide_id", mutate: testutil.Field("guide_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "zero guests", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps booking errors to proper statuses", func() {
		cases := []struct {
			name          string
			commandsError error
			expectCode    int
		}{
			{name: "guide not found", commandsError: commands.ErrGuideNotFound, expectCode: http.StatusNotFound},
			{name: "destination not found", commandsError: commands.ErrDestinationNotFound, expectCode: http.StatusNotFound},
			{name: "duplicate id", commandsError: commands.ErrDuplicateTourID, expectCode: http.StatusConflict},
			{name: "destination mismatch", commandsError: commands.ErrDestinationMismatch, expectCode: http.StatusBadRequest},
			{name: "group too large", commandsError: commands.ErrGroupTooLarge, expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookTour(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Booking failed")
			})
		}
	})
}

func (s *TourHandlerTestSuite) TestSubmitReview() {
	url := "/tours/3/review"
	reqBody := builder.NewTourBuilder().BuildReviewRequestDTO()
	returnView := builder.NewTourBuilder().WithID(3).BuildView()

	s.Run("success: returns the refreshed tour", func() {
		s.mockCommands.EXPECT().SubmitReview(gomock.Any(), int64(3), gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetBookedTour(gomock.Any(), int64(3)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.BookedTourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.ID)
	})

	s.Run("error: 400 on rating and text bounds", func() {
		cases := []testCaseTour{
			{name: "rating 0", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating 6", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "missing rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
			{name: "text too long", mutate: testutil.Field("text", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 on unknown tour", func() {
		s.mockCommands.EXPECT().SubmitReview(gomock.Any(), int64(3), gomock.Any()).
			Return(commands.ErrTourNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}
