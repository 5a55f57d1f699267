package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"required"`
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload["error"]
}

func TestBind(t *testing.T) {
	v := validator.NewValidator()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var in sample
		if err := Bind(c, v, &in); err != nil {
			return BadRequest(c, err)
		}
		return c.SendString(in.Name)
	})

	cases := map[string]struct {
		body   string
		status int
		errMsg string
	}{
		"valid":        {`{"name":"ana"}`, fiber.StatusOK, ""},
		"malformed":    {`{"name":`, fiber.StatusBadRequest, "invalid input"},
		"missing name": {`{}`, fiber.StatusBadRequest, "name is required"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.errMsg != "" {
				assert.Equal(t, tc.errMsg, decodeError(t, resp.Body))
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	app := fiber.New()
	app.Get("/locked", func(c *fiber.Ctx) error { return WriteError(c, autherror.ErrAccountLocked) })
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return WriteError(c, fmt.Errorf("%w: bad discount", autherror.ErrValidation))
	})
	app.Get("/internal", func(c *fiber.Ctx) error { return WriteError(c, errors.New("connection refused")) })

	resp, err := app.Test(httptest.NewRequest("GET", "/locked", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusLocked, resp.StatusCode)
	assert.Equal(t, autherror.ErrAccountLocked.Error(), decodeError(t, resp.Body))

	resp, err = app.Test(httptest.NewRequest("GET", "/wrapped", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation error: bad discount", decodeError(t, resp.Body))

	resp, err = app.Test(httptest.NewRequest("GET", "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", decodeError(t, resp.Body))
}
