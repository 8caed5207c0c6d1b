package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTier1_PublicRoutes tests that public routes exist and are accessible
func TestTier1_PublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Home page", "GET", "/", http.StatusOK},
		{"Health check", "GET", "/health", http.StatusOK},
		{"Login page", "GET", "/admin-login", http.StatusOK},
		{"Products API", "GET", "/api/products", http.StatusOK},
		{"Modules API", "GET", "/api/modules", http.StatusOK},
		{"Site API", "GET", "/api/site", http.StatusOK},
		{"Import template", "GET", "/api/import/templates/products", http.StatusOK},
		{"Unknown product page", "GET", "/products/nope", http.StatusNotFound},
		{"Unknown share card", "GET", "/og/products/nope.png", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, "", false)
			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestTier2_AdminPagesRedirect tests that admin pages send anonymous browsers to the login form
func TestTier2_AdminPagesRedirect(t *testing.T) {
	e, _ := setupTestEcho(t)

	for _, path := range []string{"/admin", "/admin/products", "/admin/modules", "/admin/settings", "/admin/import", "/admin/guide"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(e, http.MethodGet, path, "", false)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/admin-login?from="+url.QueryEscape(path), rec.Header().Get("Location"))

			rec = serve(e, http.MethodGet, path, "", true)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// TestTier2_APIWritesRequireSession tests that anonymous writes are rejected before reaching handlers
func TestTier2_APIWritesRequireSession(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{"POST", "/api/products", `{"name":"X"}`},
		{"PUT", "/api/products", `{"id":"x"}`},
		{"DELETE", "/api/products?id=x", ""},
		{"PATCH", "/api/products", `{"action":"reorder","data":[]}`},
		{"POST", "/api/modules", `{"action":"updateContent"}`},
		{"PUT", "/api/modules", `{"id":"hero"}`},
		{"PATCH", "/api/modules", `{"action":"toggle"}`},
		{"PUT", "/api/site", `{"name":"X"}`},
		{"POST", "/api/ai/generate", `{"type":"faq","prompt":"x","count":1}`},
		{"POST", "/api/import/preview/faq", `question,answer`},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, tt.body, false)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestTier2_AnonymousWritesLeaveStoreUnchanged(t *testing.T) {
	e, svc := setupTestEcho(t)
	ctx := context.Background()

	product, err := svc.cms.CreateProduct(ctx, content.Product{Name: "WinkBed", Rank: 1, IsActive: true})
	require.NoError(t, err)
	productsBefore, err := svc.cms.ListProducts(ctx)
	require.NoError(t, err)
	modulesBefore, err := svc.cms.ListModules(ctx)
	require.NoError(t, err)
	siteBefore, err := svc.cms.GetSite(ctx)
	require.NoError(t, err)

	writes := []struct {
		method string
		path   string
		body   string
	}{
		{"PUT", "/api/products", `{"id":"` + product.ID + `","name":"Hijacked","isActive":false}`},
		{"DELETE", "/api/products?id=" + product.ID, ""},
		{"PATCH", "/api/products", `{"action":"reorder","data":[{"id":"` + product.ID + `","rank":9}]}`},
		{"POST", "/api/products", `{"action":"bulkImport","data":[{"name":"Spam"}]}`},
		{"PATCH", "/api/modules", `{"action":"toggle","data":{"id":"hero","enabled":false}}`},
		{"POST", "/api/modules", `{"action":"updateContent","data":{"id":"faq","items":[]}}`},
		{"PUT", "/api/site", `{"id":"` + siteBefore.ID + `","name":"Hijacked"}`},
	}
	for _, w := range writes {
		rec := serve(e, w.method, w.path, w.body, false)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", w.method, w.path)
	}

	got, err := svc.cms.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, got)

	productsAfter, err := svc.cms.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, productsBefore, productsAfter)
	modulesAfter, err := svc.cms.ListModules(ctx)
	require.NoError(t, err)
	assert.Equal(t, modulesBefore, modulesAfter)
	siteAfter, err := svc.cms.GetSite(ctx)
	require.NoError(t, err)
	assert.Equal(t, siteBefore, siteAfter)
}

func TestLoginThenWrite(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := serve(e, http.MethodPost, "/api/auth", `{"password":"wrong"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = serve(e, http.MethodPost, "/api/admin-auth", `{"password":"`+testPassword+`"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)

	rec = serve(e, http.MethodPost, "/api/products", `{"name":"WinkBed"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "winkbed", env.Data.Slug)

	rec = serve(e, http.MethodGet, "/products/winkbed", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WinkBed")

	rec = serve(e, http.MethodGet, "/og/products/winkbed.png", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = serve(e, http.MethodDelete, "/api/auth", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0"))
}

func TestAPIErrorEnvelope(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := serve(e, http.MethodGet, "/api/products?slug=missing", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, false, env["success"])
	assert.NotEmpty(t, env["error"])
}

func TestSiteAPIRedactsKeys(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := serve(e, http.MethodPut, "/api/site", `{"id":"`+seededSiteID+`","ai":{"provider":"openai","openaiKey":"sk-secret"}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/api/site", "", false)
	assert.NotContains(t, rec.Body.String(), "sk-secret")

	rec = serve(e, http.MethodGet, "/api/site", "", true)
	assert.Contains(t, rec.Body.String(), "sk-secret")
}
