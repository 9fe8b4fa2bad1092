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

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AdminHandler
	adminID      uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)
	s.adminID = uuid.New()

	asAdmin := func(c *gin.Context) {
		c.Set("user_id", s.adminID)
	}

	s.router.GET("/admin/me", asAdmin, s.handler.Me)
	s.router.PUT("/admin/me", asAdmin, s.handler.UpdateMe)
	s.router.PUT("/admin/change-password", asAdmin, s.handler.ChangePassword)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminView(name, email string) *queries.UserView {
	return &queries.UserView{
		ID:        s.adminID,
		Name:      name,
		Email:     email,
		Role:      "admin",
		IsActive:  true,
		CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (s *AdminHandlerTestSuite) TestMe() {
	s.mockQueries.EXPECT().ByID(gomock.Any(), s.adminID).
		Return(s.adminView("Ops", "ops@example.com"), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/me", nil, "")

	var response resdto.UserResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("ops@example.com", response.Email)
	s.Equal("admin", response.Role)
}

func (s *AdminHandlerTestSuite) TestUpdateMe() {
	url := "/admin/me"

	s.Run("success: 200 with the updated profile", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.adminID, gomock.Any()).
			Return(s.adminView("Ops Lead", "lead@example.com"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"name": "Ops Lead", "email": "lead@example.com"}, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ops Lead", response.Name)
	})

	s.Run("error: 409 when the email belongs to another account", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.adminID, gomock.Any()).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"email": "taken@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 on malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"email": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AdminHandlerTestSuite) TestChangePassword() {
	url := "/admin/change-password"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.adminID, "oldpassword", "newpassword1").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"current_password": "oldpassword", "new_password": "newpassword1"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 when the current password is wrong", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.adminID, "wrong", "newpassword1").
			Return(commands.ErrWrongPassword).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"current_password": "wrong", "new_password": "newpassword1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "incorrect")
	})

	s.Run("error: 400 on short new password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"current_password": "oldpassword", "new_password": "short"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
