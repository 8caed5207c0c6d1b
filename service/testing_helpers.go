package service

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/storage"
)

const testPassword = "correct horse"

// seededSiteID is the id of the site row the migrations create.
const seededSiteID = "00000000-0000-0000-0000-000000000001"

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://example.com",
		DBPath:      filepath.Join(t.TempDir(), "test.db"),
	}
	config.Admin.Password = testPassword

	return New(store, config)
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// serve sends one request through e, optionally with the admin cookie.
func serve(e *echo.Echo, method, path, body string, signedIn bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if signedIn {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "authenticated"})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
