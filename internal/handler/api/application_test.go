//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tourmate/internal/domain/application"
	"tourmate/internal/handler/api"
	resdto "tourmate/internal/handler/dto/response"
	"tourmate/internal/infra"
	"tourmate/internal/usecase/commands"
	"tourmate/tests/common/builder"
	"tourmate/tests/common/httptest"
	"tourmate/tests/common/testutil"
	commandsmock "tourmate/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApplicationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockApplicationCommands
}

func (s *ApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockApplicationCommands(s.mockCtrl)
	handler := api.NewApplicationHandler(s.mockCommands)

	s.router.POST("/guide-applications", handler.Create)
}

func (s *ApplicationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}

func (s *ApplicationHandlerTestSuite) TestCreate() {
	url := "/guide-applications"
	reqBody := builder.NewApplicationBuilder().BuildRequestDTO()

	s.Run("success: returns 201 with id and pending status", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SubmitApplication(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitApplicationResult{ApplicationID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SubmitApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ApplicationID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing full_name", mutate: testutil.Field("full_name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing phone", mutate: testutil.Field("phone", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: city and experience are optional", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("city", nil),
			testutil.Field("experience", nil),
		)
		s.mockCommands.EXPECT().SubmitApplication(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitApplicationResult{ApplicationID: uuid.New()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 when the use case rejects the submission", func() {
		s.mockCommands.EXPECT().SubmitApplication(gomock.Any(), gomock.Any()).
			Return(nil, application.ErrInvalidEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Submit application failed")
	})

	s.Run("error: 500 when persistence fails", func() {
		s.mockCommands.EXPECT().SubmitApplication(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert guide application", assert.AnError, infra.KindDBFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Submit application failed")
	})
}
