package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
)

type SiteHandler struct {
	svc *cms.Service
}

func NewSiteHandler(svc *cms.Service) *SiteHandler {
	return &SiteHandler{svc: svc}
}

// Get returns the site document. Provider credentials are blanked for
// anonymous callers.
func (h *SiteHandler) Get(c echo.Context) error {
	site, err := h.svc.GetSite(c.Request().Context())
	if err != nil {
		return apiError(err, "load site config")
	}
	if !auth.IsAuthenticated(c) {
		site = site.Redacted()
	}
	return ok(c, site)
}

// Update applies the groups present in the body to the site document.
func (h *SiteHandler) Update(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var patch content.SiteConfigPatch
	if err := decode(body, &patch); err != nil {
		return err
	}

	site, err := h.svc.UpdateSite(c.Request().Context(), patch)
	if err != nil {
		return apiError(err, "update site config")
	}
	return ok(c, site)
}
