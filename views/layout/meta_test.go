package layout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMeta_FromProduct(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products/winkbed", nil), httptest.NewRecorder())

	site := content.DefaultSiteConfig()
	site.Name = "Top Picks"
	site.SEO.Title = "Best Mattresses 2026"

	meta := NewPageMeta(c, site, "https://picks.example.com/").FromProduct(content.Product{
		Name:        "WinkBed",
		Slug:        "winkbed",
		Rating:      9.4,
		Price:       content.Price{Original: 1799, Current: 1299},
		BriefReview: "Great for back pain.",
		Images:      content.Images{Main: "/img/winkbed.jpg"},
	})

	assert.Equal(t, "WinkBed - Top Picks", meta.Title)
	assert.Equal(t, "product", meta.OGType)
	assert.Equal(t, "https://picks.example.com/products/winkbed", meta.CanonicalURL)
	assert.Equal(t, "https://picks.example.com/og/products/winkbed.png", meta.OGImageURL)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(meta.SchemaJSON), &schema))
	assert.Equal(t, "Product", schema["@type"])
	assert.Equal(t, "https://picks.example.com/img/winkbed.jpg", schema["image"])
	review := schema["review"].(map[string]any)
	assert.Equal(t, "9.4", review["reviewRating"].(map[string]any)["ratingValue"])
	assert.Equal(t, "1299.00", schema["offers"].(map[string]any)["price"])
}

func TestNewPageMeta_OrganizationSchema(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	t.Run("with logo", func(t *testing.T) {
		site := content.DefaultSiteConfig()
		site.Name = "Top Picks"
		site.Logo = "/public/logo.png"

		meta := NewPageMeta(c, site, "https://picks.example.com/")

		var schema map[string]any
		require.NoError(t, json.Unmarshal([]byte(meta.SchemaJSON), &schema))
		assert.Equal(t, "Organization", schema["@type"])
		assert.Equal(t, "Top Picks", schema["name"])
		assert.Equal(t, "https://picks.example.com", schema["url"])
		assert.Equal(t, "https://picks.example.com/public/logo.png", schema["logo"])
	})

	t.Run("without logo", func(t *testing.T) {
		site := content.DefaultSiteConfig()
		site.Name = "Top Picks"

		meta := NewPageMeta(c, site, "https://picks.example.com")

		var schema map[string]any
		require.NoError(t, json.Unmarshal([]byte(meta.SchemaJSON), &schema))
		assert.NotContains(t, schema, "logo")
	})

	t.Run("unnamed site", func(t *testing.T) {
		meta := NewPageMeta(c, content.DefaultSiteConfig(), "https://picks.example.com")
		assert.Empty(t, meta.SchemaJSON)
	})
}

func TestBuildAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://a.com/x", BuildAbsoluteURL("https://a.com/", "x"))
	assert.Equal(t, "https://cdn.com/y.png", BuildAbsoluteURL("https://a.com", "https://cdn.com/y.png"))
	assert.Equal(t, "https://a.com", BuildAbsoluteURL("https://a.com", ""))
}
