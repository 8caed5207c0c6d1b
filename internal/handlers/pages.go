package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/ogimage"
	"github.com/loganlanou/reviewhub/views"
	"github.com/loganlanou/reviewhub/views/layout"
	"golang.org/x/sync/errgroup"
)

// PagesHandler renders the public site.
type PagesHandler struct {
	svc     *cms.Service
	siteURL string
	cards   *ogimage.Cache
}

// NewPagesHandler builds the public handlers. cards may be nil to render
// share images on every request.
func NewPagesHandler(svc *cms.Service, siteURL string, cards *ogimage.Cache) *PagesHandler {
	return &PagesHandler{svc: svc, siteURL: siteURL, cards: cards}
}

// loadSite returns the site document, falling back to defaults so a
// broken store still serves a page.
func (h *PagesHandler) loadSite(c echo.Context) content.SiteConfig {
	site, err := h.svc.GetSite(c.Request().Context())
	if err != nil {
		slog.Error("failed to load site config", "error", err)
		return content.DefaultSiteConfig()
	}
	return site
}

// Home loads the site, enabled modules and active products in parallel.
// A failed load degrades only the part that needed it.
func (h *PagesHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		site        = content.DefaultSiteConfig()
		modules     []content.Module
		products    []content.Product
		siteErr     error
		modulesErr  error
		productsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		s, err := h.svc.GetSite(ctx)
		if err == nil {
			site = s
		}
		siteErr = err
		return nil
	})
	g.Go(func() error {
		modules, modulesErr = h.svc.ListEnabledModules(ctx)
		return nil
	})
	g.Go(func() error {
		products, productsErr = h.svc.ListActiveProducts(ctx)
		return nil
	})
	_ = g.Wait()

	page := views.HomePage{Site: site}
	if siteErr != nil {
		slog.Error("failed to load site config", "error", siteErr)
		page.Degraded = append(page.Degraded, "site")
	}
	if modulesErr != nil {
		slog.Error("failed to load modules", "error", modulesErr)
		page.Degraded = append(page.Degraded, "modules")
	}
	if productsErr != nil {
		slog.Error("failed to load products", "error", productsErr)
		page.Degraded = append(page.Degraded, "products")
	}

	page.Sections = buildSections(modules, products)
	page.Meta = layout.NewPageMeta(c, site, h.siteURL)
	return Render(c, views.Page("home", page))
}

// buildSections keeps module order and gives the products section its
// ranked slice.
func buildSections(modules []content.Module, products []content.Product) []views.Section {
	sections := make([]views.Section, 0, len(modules))
	for _, m := range modules {
		s := views.Section{ID: m.ID, Content: m.Content}
		if pc, ok := m.Content.(content.ProductsContent); ok {
			n := min(pc.Limit(), len(products))
			s.Products = products[:n]
		}
		sections = append(sections, s)
	}
	return sections
}

// Product renders the detail page of an active product.
func (h *PagesHandler) Product(c echo.Context) error {
	site := h.loadSite(c)
	p, err := h.activeProduct(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return h.message(c, site, http.StatusNotFound, "Not found", "That product is not available.")
		}
		slog.Error("failed to load product", "error", err, "slug", c.Param("slug"))
		return h.message(c, site, http.StatusInternalServerError, "Something went wrong", "Please try again later.")
	}

	meta := layout.NewPageMeta(c, site, h.siteURL).FromProduct(p)
	return Render(c, views.Page("product", views.ProductPage{Meta: meta, Site: site, Product: p}))
}

func (h *PagesHandler) activeProduct(c echo.Context, slug string) (content.Product, error) {
	p, err := h.svc.GetProductBySlug(c.Request().Context(), slug)
	if err != nil {
		return content.Product{}, err
	}
	if !p.IsActive {
		return content.Product{}, cms.ErrNotFound
	}
	return p, nil
}

func (h *PagesHandler) message(c echo.Context, site content.SiteConfig, status int, title, message string) error {
	meta := layout.NewPageMeta(c, site, h.siteURL)
	meta.Title = title + " - " + site.Name
	return RenderStatus(c, status, views.Page("message", views.MessagePage{Meta: meta, Site: site, Title: title, Message: message}))
}

// OGImage serves the share card for /og/products/<slug>.png.
func (h *PagesHandler) OGImage(c echo.Context) error {
	slug, isPNG := strings.CutSuffix(c.Param("file"), ".png")
	if !isPNG {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	p, err := h.activeProduct(c, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		slog.Error("failed to load product", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load product")
	}
	site := h.loadSite(c)

	data, err := h.cards.Get(p.Slug, ogimage.ProductCard(site, p))
	if err != nil {
		slog.Error("failed to render share card", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render image")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", data)
}
