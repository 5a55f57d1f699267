package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Brunera17/TCC/internal/auth/service"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/Brunera17/TCC/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(tokens service.TokenGenerator) *fiber.App {
	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(user.UserID)
	}
	app.Get("/private", middleware.RequireAuth(tokens), whoami)
	app.Get("/approvers", middleware.RequireRole(tokens, "admin", "manager"), whoami)
	app.Get("/chained", middleware.RequireAuth(tokens), middleware.RequireRole(tokens, "admin"), whoami)
	return app
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	app := newApp(mockTokenService)

	t.Run("fails without auth header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "BearerInvalidToken")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with expired token", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("old").Return(nil, autherror.ErrTokenExpired)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer old")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("stores claims", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("good").
			Return(&service.JWTCustomClaims{UserID: "u1", Role: "employee"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer good")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	app := newApp(mockTokenService)

	t.Run("fails without auth header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/approvers", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails for employee", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("employee-token").
			Return(&service.JWTCustomClaims{UserID: "u1", Role: "employee"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/approvers", nil)
		req.Header.Set("Authorization", "Bearer employee-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("succeeds for manager", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("manager-token").
			Return(&service.JWTCustomClaims{UserID: "m1", Role: "manager"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/approvers", nil)
		req.Header.Set("Authorization", "Bearer manager-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("reuses earlier authentication", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("admin-token").
			Return(&service.JWTCustomClaims{UserID: "a1", Role: "admin"}, nil).Times(1)

		req := httptest.NewRequest(http.MethodGet, "/chained", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
