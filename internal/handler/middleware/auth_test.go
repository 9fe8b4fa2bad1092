//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret", time.Hour)
	mw := middleware.NewAuthMiddleware(svc)

	router := gin.New()
	authed := router.Group("", mw.RequireAuth())
	authed.GET("/me", func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	authed.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, svc
}

func perform(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router, svc := setupAuthRouter(t)

	t.Run("valid token passes", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "driver@example.com", user.RoleUser)
		require.NoError(t, err)

		rec := perform(router, "/me", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		rec := perform(router, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		rec := perform(router, "/me", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "driver@example.com", user.RoleUser)
		require.NoError(t, err)

		rec := perform(router, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	router, svc := setupAuthRouter(t)

	t.Run("admin passes", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "ops@example.com", user.RoleAdmin)
		require.NoError(t, err)

		rec := perform(router, "/admin", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "driver@example.com", user.RoleUser)
		require.NoError(t, err)

		rec := perform(router, "/admin", token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
