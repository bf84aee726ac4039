package sqldb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notes-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() config.Config {
	return config.Config{
		AppPort:          8080,
		DatabaseURL:      ":memory:",
		CORSAllowOrigins: "*",
		LogLevel:         "debug",
		LogFormat:        "text",
	}
}

func TestClientLifecycle(t *testing.T) {
	reset()
	t.Cleanup(reset)

	ctx := context.Background()

	require.Nil(t, DB(), "no handle before Init")
	assert.Error(t, Ping(ctx), "ping must fail before Init")

	conn, err := Init(ctx, testConfig(), silentLogger)
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Same(t, conn, DB())

	// first call wins
	again, err := Init(ctx, testConfig(), silentLogger)
	require.NoError(t, err)
	assert.Same(t, conn, again)

	assert.NoError(t, Ping(ctx))

	require.NoError(t, Shutdown(ctx))
	assert.Nil(t, DB())
	assert.Error(t, Ping(ctx))

	// Shutdown is safe to call more than once
	assert.NoError(t, Shutdown(ctx))
}
