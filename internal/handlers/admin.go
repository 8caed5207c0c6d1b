package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
	"github.com/loganlanou/reviewhub/views"
)

// AdminHandler renders the admin shell pages. All data mutation happens
// through the JSON API from the browser.
type AdminHandler struct {
	svc *cms.Service
}

func NewAdminHandler(svc *cms.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) site(c echo.Context) content.SiteConfig {
	site, err := h.svc.GetSite(c.Request().Context())
	if err != nil {
		slog.Error("failed to load site config", "error", err)
		return content.DefaultSiteConfig()
	}
	return site
}

func (h *AdminHandler) shell(c echo.Context, title, active string) views.AdminPage {
	return views.AdminPage{Site: h.site(c), Title: title, Active: active}
}

// HandleLoginPage shows the password form, or skips it for a signed-in
// browser.
func (h *AdminHandler) HandleLoginPage(c echo.Context) error {
	from, ok := sanitizeReturnTo(c.QueryParam("from"))
	if !ok {
		from = "/admin"
	}
	if auth.IsAuthenticated(c) {
		return c.Redirect(http.StatusFound, from)
	}
	return Render(c, views.Page("login", views.LoginPage{Site: h.site(c), From: from}))
}

func (h *AdminHandler) HandleAdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	page := views.DashboardPage{AdminPage: h.shell(c, "Dashboard", "dashboard")}

	total, active, err := h.svc.ProductCounts(ctx)
	if err != nil {
		slog.Error("failed to count products", "error", err)
	}
	page.TotalProducts, page.ActiveProducts = total, active

	modules, err := h.svc.ListModules(ctx)
	if err != nil {
		slog.Error("failed to list modules", "error", err)
	}
	page.Modules = modules
	for _, m := range modules {
		if m.Enabled {
			page.EnabledModules++
		}
	}

	return Render(c, views.Page("admin/dashboard", page))
}

func (h *AdminHandler) HandleProductsList(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}
	return Render(c, views.Page("admin/products", views.ProductsAdminPage{
		AdminPage: h.shell(c, "Products", "products"),
		Products:  products,
	}))
}

func (h *AdminHandler) HandleModulesList(c echo.Context) error {
	modules, err := h.svc.ListModules(c.Request().Context())
	if err != nil {
		slog.Error("failed to list modules", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load modules")
	}
	return Render(c, views.Page("admin/modules", views.ModulesAdminPage{
		AdminPage: h.shell(c, "Modules", "modules"),
		Modules:   modules,
	}))
}

func (h *AdminHandler) HandleSettings(c echo.Context) error {
	return Render(c, views.Page("admin/settings", views.SettingsAdminPage{
		AdminPage: h.shell(c, "Settings", "settings"),
	}))
}

func (h *AdminHandler) HandleImport(c echo.Context) error {
	kinds := make([]string, len(importer.Kinds))
	for i, k := range importer.Kinds {
		kinds[i] = string(k)
	}
	return Render(c, views.Page("admin/import", views.ImportAdminPage{
		AdminPage: h.shell(c, "Import", "import"),
		Kinds:     kinds,
	}))
}

func (h *AdminHandler) HandleGuide(c echo.Context) error {
	return Render(c, views.Page("admin/guide", views.GuideAdminPage{
		AdminPage: h.shell(c, "Guide", "guide"),
	}))
}
