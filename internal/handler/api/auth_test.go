//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/httptest"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	body := map[string]any{"name": "Asha", "email": "driver@example.com", "password": "password123"}

	s.Run("success: 201 with the new user id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterParams{
			Name:     "Asha",
			Email:    "driver@example.com",
			Password: "password123",
		}).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 on short password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Asha", "email": "driver@example.com", "password": "short"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Asha", "email": "not-an-email", "password": "password123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := map[string]any{"email": "driver@example.com", "password": "password123"}

	s.Run("success: 200 with token and identity", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "driver@example.com", "password123").
			Return(&commands.LoginResult{
				UserID: s.userID,
				Email:  "driver@example.com",
				Role:   "user",
				Token:  "test-jwt-token",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("user", response.Role)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "driver@example.com", "password123").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 for deactivated account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "driver@example.com", "password123").
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "deactivated")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.mockQueries.EXPECT().ByID(gomock.Any(), s.userID).
		Return(&queries.UserView{
			ID:        s.userID,
			Name:      "Asha",
			Email:     "driver@example.com",
			Role:      "user",
			IsActive:  true,
			CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

	var response resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("driver@example.com", response.Email)
}
