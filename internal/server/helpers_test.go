package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codelogs/internal/config"
	"codelogs/internal/database"
	"codelogs/internal/repository"
	"codelogs/internal/service"
	"codelogs/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory sqlite database with
// all routes registered. Prometheus middleware is left nil so repeated test
// runs do not re-register collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:     "test_secret",
		TokenTTLHours: 1,
	}

	s := &Server{
		config:   cfg,
		db:       db,
		tokens:   token.NewIssuer(cfg.JWTSecret, time.Hour),
		userRepo: repository.NewUserRepository(db),
		postRepo: repository.NewPostRepository(db),
	}
	s.blogService = service.NewBlogService(s.postRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// doJSON issues a JSON request against the test app and decodes the response
// body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, target, bearer string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// signupUser registers a user through the API and returns the issued token.
func signupUser(t *testing.T, app *fiber.App, username, email, password string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/user/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tok, ok := body["token"].(string)
	require.True(t, ok, "signup response must contain a token")
	require.NotEmpty(t, tok)
	return tok
}
