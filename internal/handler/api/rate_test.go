//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/httptest"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRateCommands
	mockQueries  *queriesmock.MockRateQueries
	handler      *api.RateHandler
}

func (s *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRateQueries(s.mockCtrl)
	s.handler = api.NewRateHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rate", s.handler.Get)
	s.router.PUT("/rate", s.handler.Set)
}

func (s *RateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRateHandlerSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}

func (s *RateHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Get(gomock.Any()).
		Return(queries.RateView{Price: 50, IntervalMinutes: 30}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rate", nil, "")

	var response resdto.RateResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(int32(50), response.Price)
	s.Equal(int32(30), response.Interval)
}

func (s *RateHandlerTestSuite) TestSet() {
	url := "/rate"

	s.Run("success: 200 with the new rate", func() {
		s.mockCommands.EXPECT().Set(gomock.Any(), int32(80), int32(15)).
			Return(queries.RateView{Price: 80, IntervalMinutes: 15}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": 80, "interval": 15}, "")

		var response resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(80), response.Price)
		s.Equal(int32(15), response.Interval)
	})

	s.Run("error: 400 on non-positive price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": 0, "interval": 15}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the usecase rejects the values", func() {
		s.mockCommands.EXPECT().Set(gomock.Any(), int32(1), int32(1)).
			Return(queries.RateView{}, commands.ErrInvalidRate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": 1, "interval": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rate")
	})
}
