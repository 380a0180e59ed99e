package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"blogcms/internal/config"
	"blogcms/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                     "0",
		APIPrefix:                "/api/v1",
		Env:                      "test",
		DBDriver:                 config.DriverSQLite,
		DBSQLitePath:             filepath.Join(t.TempDir(), "server.db"),
		DBSchemaMode:             "auto",
		DBConnMaxLifetimeMinutes: 5,
		AllowedOrigins:           "*",
		RateLimitWritesPerMinute: 60,
	}
}

// newTestApp wires the full server against a fresh SQLite database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	cfg := testConfig(t)
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	return s.App()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}
