package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/auth"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
)

const maxBodyBytes = 10 << 20

type ProductsHandler struct {
	svc *cms.Service
}

func NewProductsHandler(svc *cms.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// actionRequest is the shape of multiplexed POST and PATCH bodies.
type actionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
	}
	return body, nil
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body: "+err.Error())
	}
	return nil
}

// List returns all products ranked, or one by ?id= or ?slug=. Anonymous
// callers only see active products.
func (h *ProductsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	public := !auth.IsAuthenticated(c)

	if id, slug := c.QueryParam("id"), c.QueryParam("slug"); id != "" || slug != "" {
		var (
			p   content.Product
			err error
		)
		if id != "" {
			p, err = h.svc.GetProduct(ctx, id)
		} else {
			p, err = h.svc.GetProductBySlug(ctx, slug)
		}
		if err != nil {
			return apiError(err, "load product")
		}
		if public && !p.IsActive {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ok(c, p)
	}

	list := h.svc.ListProducts
	if public {
		list = h.svc.ListActiveProducts
	}
	products, err := list(ctx)
	if err != nil {
		return apiError(err, "list products")
	}
	return ok(c, products)
}

// Create inserts one product document, or appends a batch of import
// records when the body is {action:"bulkImport", data:[...]}.
func (h *ProductsHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var req actionRequest
	if err := decode(body, &req); err != nil {
		return err
	}

	switch req.Action {
	case "":
		p := content.Product{IsActive: true}
		if err := decode(body, &p); err != nil {
			return err
		}
		created, err := h.svc.CreateProduct(c.Request().Context(), p)
		if err != nil {
			return apiError(err, "create product")
		}
		return ok(c, created)

	case "bulkImport":
		var records []importer.Record
		if err := decode(req.Data, &records); err != nil {
			return err
		}
		if len(records) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "no records to import")
		}
		ctx := importBatch(c)
		created, err := h.svc.ImportProducts(ctx, importer.ProductsFromRecords(records))
		if err != nil {
			return apiError(err, "import products")
		}
		return ok(c, created)
	}
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
}

// Update applies the fields present in the body to the product named by id.
func (h *ProductsHandler) Update(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var patch content.ProductPatch
	if err := decode(body, &patch); err != nil {
		return err
	}

	updated, err := h.svc.UpdateProduct(c.Request().Context(), patch)
	if err != nil {
		return apiError(err, "update product")
	}
	return ok(c, updated)
}

func (h *ProductsHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	deleted, err := h.svc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return apiError(err, "delete product")
	}
	return ok(c, deleted)
}

// Patch handles {action:"reorder", data:[{id, rank}]}.
func (h *ProductsHandler) Patch(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	var req actionRequest
	if err := decode(body, &req); err != nil {
		return err
	}

	switch req.Action {
	case "reorder":
		var updates []cms.RankUpdate
		if err := decode(req.Data, &updates); err != nil {
			return err
		}
		products, err := h.svc.ReorderProducts(c.Request().Context(), updates)
		if err != nil {
			return apiError(err, "reorder products")
		}
		return ok(c, products)
	}
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
}
