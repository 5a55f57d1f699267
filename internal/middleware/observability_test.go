package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Brunera17/TCC/internal/metrics"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrBadGateway })

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(fiber.StatusTeapot), fields["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap(), "error")
}

func TestMetrics(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Metrics())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/items/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/items/1", "/items/2"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
