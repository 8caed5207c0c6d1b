package layout

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/content"
)

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string // "website" or "product"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard        string // "summary_large_image"
	TwitterTitle       string
	TwitterDescription string
	TwitterImageURL    string // MUST be absolute URL

	// Internal state
	SiteURL  string
	SiteLogo string // absolute, empty when the site has no logo
	Product  *content.Product

	// Schema.org JSON-LD (pre-computed). Organization for site pages,
	// Product with its Review on detail pages.
	SchemaJSON string
}

// NewPageMeta creates a PageMeta with site-wide defaults taken from the
// site document. Chain .FromProduct() for detail pages.
func NewPageMeta(c echo.Context, site content.SiteConfig, siteURL string) PageMeta {
	title := site.SEO.Title
	if title == "" {
		title = site.Name
	}
	description := site.SEO.Description
	if description == "" {
		description = site.Tagline
	}

	canonicalURL := BuildAbsoluteURL(siteURL, c.Request().URL.Path)
	ogImage := ""
	if site.SEO.OGImage != "" {
		ogImage = BuildAbsoluteURL(siteURL, site.SEO.OGImage)
	}

	logo := ""
	if site.Logo != "" {
		logo = BuildAbsoluteURL(siteURL, site.Logo)
	}

	pm := PageMeta{
		Title:        title,
		Description:  description,
		Keywords:     site.SEO.Keywords,
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       title,
		OGDescription: description,
		OGImageURL:    ogImage,
		OGURL:         canonicalURL,
		OGSiteName:    site.Name,

		TwitterCard:        "summary_large_image",
		TwitterTitle:       title,
		TwitterDescription: description,
		TwitterImageURL:    ogImage,

		SiteURL:  siteURL,
		SiteLogo: logo,
	}
	pm.SchemaJSON = schemaJSON(pm.OrganizationSchemaData())
	return pm
}

// FromProduct updates PageMeta for a product detail page. The share
// image is the rendered product card.
func (pm PageMeta) FromProduct(product content.Product) PageMeta {
	description := product.Tagline
	if product.BriefReview != "" {
		description = product.BriefReview
	}

	pm.Title = product.Name + " - " + pm.OGSiteName
	pm.OGTitle = product.Name
	pm.TwitterTitle = product.Name

	pm.Description = description
	pm.OGDescription = description
	pm.TwitterDescription = description

	pm.Keywords = append([]string{product.Name}, product.BestFor...)

	productURL := fmt.Sprintf("%s/products/%s", strings.TrimRight(pm.SiteURL, "/"), product.Slug)
	pm.CanonicalURL = productURL
	pm.OGURL = productURL
	pm.OGType = "product"

	pm = pm.WithOGImage(fmt.Sprintf("/og/products/%s.png", product.Slug))

	pm.Product = &product
	pm.SchemaJSON = schemaJSON(pm.ProductSchemaData())
	return pm
}

// WithOGImage overrides the OG image URL
func (pm PageMeta) WithOGImage(imageURL string) PageMeta {
	absoluteURL := BuildAbsoluteURL(pm.SiteURL, imageURL)
	pm.OGImageURL = absoluteURL
	pm.TwitterImageURL = absoluteURL
	return pm
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	return strings.Join(pm.Keywords, ", ")
}

// SchemaScript returns the JSON-LD for safe inclusion in a script tag.
func (pm PageMeta) SchemaScript() template.JS {
	return template.JS(pm.SchemaJSON)
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}

func schemaJSON(data map[string]interface{}) string {
	if data == nil {
		return ""
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

// ProductSchemaData returns the Product schema with its editorial Review
// as a map for JSON-LD. Ratings are on a 10 point scale.
func (pm PageMeta) ProductSchemaData() map[string]interface{} {
	if pm.Product == nil {
		return nil
	}
	product := pm.Product

	currency := product.Price.Currency
	if currency == "" {
		currency = "USD"
	}

	schema := map[string]interface{}{
		"@context":    "https://schema.org/",
		"@type":       "Product",
		"name":        product.Name,
		"description": pm.Description,
	}

	if product.Images.Main != "" {
		schema["image"] = BuildAbsoluteURL(pm.SiteURL, product.Images.Main)
	}

	if product.Price.Current > 0 {
		offerURL := pm.OGURL
		if product.AffiliateLink != "" {
			offerURL = product.AffiliateLink
		}
		schema["offers"] = map[string]interface{}{
			"@type":         "Offer",
			"url":           offerURL,
			"priceCurrency": currency,
			"price":         fmt.Sprintf("%.2f", product.Price.Current),
			"availability":  "https://schema.org/InStock",
		}
	}

	if product.Rating > 0 {
		review := map[string]interface{}{
			"@type": "Review",
			"reviewRating": map[string]interface{}{
				"@type":       "Rating",
				"ratingValue": fmt.Sprintf("%.1f", product.Rating),
				"bestRating":  "10",
				"worstRating": "0",
			},
			"author": map[string]interface{}{
				"@type": "Organization",
				"name":  pm.OGSiteName,
			},
		}
		if product.BriefReview != "" {
			review["reviewBody"] = product.BriefReview
		}
		schema["review"] = review
	}

	return schema
}

// OrganizationSchemaData returns the publisher behind the reviews. Nil
// when the site has no name yet.
func (pm PageMeta) OrganizationSchemaData() map[string]interface{} {
	if pm.OGSiteName == "" {
		return nil
	}
	schema := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     pm.OGSiteName,
		"url":      strings.TrimRight(pm.SiteURL, "/"),
	}
	if pm.SiteLogo != "" {
		schema["logo"] = pm.SiteLogo
	}
	return schema
}
