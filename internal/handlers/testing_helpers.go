package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/storage"
)

// NewTestContext creates a new Echo context for testing. A string body is
// sent as-is, anything else is JSON encoded.
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// SetAuthenticated marks the request as coming from a signed-in admin.
func SetAuthenticated(c echo.Context) {
	c.Set(auth.AuthenticatedKey, true)
}

// NewTestService creates a content service over a migrated, seeded
// in-memory database.
func NewTestService() (*cms.Service, func()) {
	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		panic("failed to create test storage: " + err.Error())
	}
	return cms.New(store), cleanup
}

// CreateTestProduct inserts an active product with the given name.
func CreateTestProduct(svc *cms.Service, name string) (content.Product, error) {
	return svc.CreateProduct(context.Background(), content.Product{
		Name:     name,
		Rating:   9.0,
		Price:    content.Price{Original: 1299, Current: 999, Currency: "USD"},
		IsActive: true,
	})
}

// DecodeEnvelope parses an API response and unmarshals its data into out
// when out is non-nil.
func DecodeEnvelope(rec *httptest.ResponseRecorder, out any) (Envelope, error) {
	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		return Envelope{}, err
	}
	env := Envelope{Success: raw.Success, Error: raw.Error}
	if out != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, out); err != nil {
			return env, err
		}
		env.Data = out
	}
	return env, nil
}
