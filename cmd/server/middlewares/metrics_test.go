package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	t.Run("matched route returns template", func(t *testing.T) {
		app := fiber.New()
		app.Get("/notes/:id", func(c *fiber.Ctx) error {
			assert.Equal(t, "/notes/:id", routeLabel(c))
			return c.SendString("ok")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/notes/42", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("unmatched route falls back to raw path", func(t *testing.T) {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			assert.NotEmpty(t, routeLabel(c))
			return c.SendStatus(404)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/nonexistent", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{302, "302"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusClass(tt.status))
	}
}

func TestAttachMetricsExposesEndpoint(t *testing.T) {
	app := fiber.New()
	AttachMetrics(app)
	app.Get("/hello", func(c *fiber.Ctx) error {
		return c.SendString("hi")
	})

	// generate one observation
	resp, err := app.Test(httptest.NewRequest("GET", "/hello", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
	assert.Contains(t, string(body), "http_request_duration_seconds")
}
