package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
)

type ModulesHandler struct {
	svc *cms.Service
}

func NewModulesHandler(svc *cms.Service) *ModulesHandler {
	return &ModulesHandler{svc: svc}
}

// List returns all modules in display order, or one by ?id=.
func (h *ModulesHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if id := c.QueryParam("id"); id != "" {
		m, err := h.svc.GetModule(ctx, id)
		if err != nil {
			return apiError(err, "load module")
		}
		return ok(c, m)
	}

	modules, err := h.svc.ListModules(ctx)
	if err != nil {
		return apiError(err, "list modules")
	}
	return ok(c, modules)
}

type itemsRequest struct {
	ID    string            `json:"id"`
	Items []importer.Record `json:"items"`
	Rows  []importer.Record `json:"rows"`
}

// Create handles {action:"updateContent", data:{id, items|rows}}, which
// replaces a list-bearing module's items with confirmed import records.
func (h *ModulesHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var req actionRequest
	if err := decode(body, &req); err != nil {
		return err
	}
	if req.Action != "updateContent" {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
	}

	var data itemsRequest
	if err := decode(req.Data, &data); err != nil {
		return err
	}
	records := data.Items
	if data.Rows != nil {
		records = data.Rows
	}
	if records == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "items or rows required")
	}

	kind, err := importer.ParseKind(data.ID)
	if err != nil {
		return apiError(err, "replace module items")
	}
	items, err := importer.ModuleItems(kind, records)
	if err != nil {
		return apiError(err, "replace module items")
	}

	m, err := h.svc.ReplaceModuleItems(importBatch(c), data.ID, items)
	if err != nil {
		return apiError(err, "replace module items")
	}
	return ok(c, m)
}

// Update applies {id, enabled?, order?, content?} to one module.
func (h *ModulesHandler) Update(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var patch content.ModulePatch
	if err := decode(body, &patch); err != nil {
		return err
	}

	m, err := h.svc.UpdateModule(c.Request().Context(), patch)
	if err != nil {
		return apiError(err, "update module")
	}
	return ok(c, m)
}

type toggleRequest struct {
	ID      string `json:"id"`
	Enabled *bool  `json:"enabled"`
}

// Patch handles the toggle, reorder and bulkUpdate actions. Each returns
// the full module list.
func (h *ModulesHandler) Patch(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var req actionRequest
	if err := decode(body, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	var (
		modules []content.Module
		opErr   error
	)
	switch req.Action {
	case "toggle":
		var t toggleRequest
		if err := decode(req.Data, &t); err != nil {
			return err
		}
		if t.Enabled == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "enabled required")
		}
		modules, opErr = h.svc.ToggleModule(ctx, t.ID, *t.Enabled)

	case "reorder":
		var updates []cms.OrderUpdate
		if err := decode(req.Data, &updates); err != nil {
			return err
		}
		modules, opErr = h.svc.ReorderModules(ctx, updates)

	case "bulkUpdate":
		var list []content.Module
		if err := decode(req.Data, &list); err != nil {
			return apiError(fmt.Errorf("%w: %w", cms.ErrInvalidRequest, err), "update modules")
		}
		modules, opErr = h.svc.BulkUpdateModules(ctx, list)

	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
	}

	if opErr != nil {
		return apiError(opErr, req.Action+" modules")
	}
	return ok(c, modules)
}
