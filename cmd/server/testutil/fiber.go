package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes-backend/cmd/server/handlers/httperr"
	"notes-backend/internal/config"
	"notes-backend/internal/logger"

	"github.com/stretchr/testify/require"

	"github.com/gofiber/fiber/v2"
)

// CreateTestApp creates a basic Fiber app for testing with common configuration
func CreateTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{AppPort: 8080, DatabaseURL: ":memory:", CORSAllowOrigins: "*", LogLevel: "debug", LogFormat: "text"}
	_, err := logger.Init(cfg)
	require.NoError(t, err)

	return fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
	})
}

// CreateJSONRequest creates an HTTP request with a JSON body
func CreateJSONRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON reads and unmarshals a response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, out))
}
