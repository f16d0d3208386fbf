//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"condo-parking/internal/handler/api"
	reqdto "condo-parking/internal/handler/dto/request"
	resdto "condo-parking/internal/handler/dto/response"
	"condo-parking/internal/usecase/commands"
	"condo-parking/internal/usecase/queries"
	"condo-parking/tests/common/httptest"
	"condo-parking/tests/common/testutil"
	commandsmock "condo-parking/tests/mock/commands"
	queriesmock "condo-parking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpotCommands
	mockQueries  *queriesmock.MockSpotQueries
	handler      *api.SpotHandler
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpotQueries(s.mockCtrl)
	s.handler = api.NewSpotHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/spots", s.handler.Create)
	s.router.GET("/spots", s.handler.List)
}

func (s *SpotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SpotHandlerTestSuite) TestCreate() {
	url := "/spots"
	reqBody := reqdto.CreateSpotRequest{Code: "P-07", Floor: -1}

	s.Run("success: returns 201 Created with the spot ID and Location header", func() {
		spotID := uuid.New()
		s.mockCommands.EXPECT().
			CreateSpot(gomock.Any(), commands.CreateSpotParams{Code: "P-07", Floor: -1}).
			Return(spotID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(spotID.String(), response["id"])
		s.Equal("/api/spots/"+spotID.String(), rec.Header().Get("Location"))
	})

	s.Run("error: 400 Bad Request on missing code", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate spot code",
				commandsError:  commands.ErrDuplicateSpot,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Spot code already exists",
			},
			{
				name:           "invalid attributes",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid spot attributes",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateSpot(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *SpotHandlerTestSuite) TestList() {
	url := "/spots"

	s.Run("success: returns active spots ordered by the store", func() {
		views := []*queries.SpotView{
			{ID: uuid.New(), Code: "B1-03", Floor: -1, Active: true},
			{ID: uuid.New(), Code: "P-07", Floor: 1, Active: true},
		}
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("B1-03", response[0].Code)
		s.Equal(int32(1), response[1].Floor)
	})

	s.Run("success: returns an empty list when no spots are active", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
