package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/ai"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/importer"
	"github.com/oklog/ulid/v2"
)

// ImportHandler serves templates and previews. Nothing here writes: the
// confirmed records go through the products and modules endpoints.
type ImportHandler struct {
	svc     *cms.Service
	gen     *ai.Generator
	fetcher *importer.Fetcher
}

func NewImportHandler(svc *cms.Service, gen *ai.Generator, fetcher *importer.Fetcher) *ImportHandler {
	return &ImportHandler{svc: svc, gen: gen, fetcher: fetcher}
}

// HeaderImportBatch names the import batch of a confirmation response. The
// same id appears on the import's log lines.
const HeaderImportBatch = "X-Import-Batch"

// importBatch starts a new import batch for the request and returns a
// context tagged with it.
func importBatch(c echo.Context) context.Context {
	batch := ulid.Make().String()
	c.Response().Header().Set(HeaderImportBatch, batch)
	return cms.WithImportBatch(c.Request().Context(), batch)
}

// Template downloads the CSV template for :kind.
func (h *ImportHandler) Template(c echo.Context) error {
	kind, err := importer.ParseKind(c.Param("kind"))
	if err != nil {
		return apiError(err, "load template")
	}
	text, err := importer.TemplateCSV(kind)
	if err != nil {
		return apiError(err, "load template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", importer.TemplateFileName(kind)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

// Preview parses an uploaded CSV (multipart "file", a raw text body, or a
// published sheet via ?url=) into records for review.
func (h *ImportHandler) Preview(c echo.Context) error {
	kind, err := importer.ParseKind(c.Param("kind"))
	if err != nil {
		return apiError(err, "preview import")
	}

	var table *importer.Table
	switch {
	case c.QueryParam("url") != "":
		table, err = h.fetcher.FetchCSV(c.Request().Context(), c.QueryParam("url"))
		if err != nil && !errors.Is(err, importer.ErrParse) {
			slog.Warn("failed to fetch sheet", "url", c.QueryParam("url"), "error", err)
			return echo.NewHTTPError(http.StatusBadGateway, "Failed to fetch the sheet")
		}
	default:
		var r io.Reader
		r, err = uploadReader(c)
		if err != nil {
			return err
		}
		table, err = importer.ParseCSV(r)
	}
	if err != nil {
		return apiError(err, "preview import")
	}

	slog.Info("import previewed", "kind", kind, "records", len(table.Records))
	return ok(c, table)
}

func uploadReader(c echo.Context) (io.Reader, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "file required")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Failed to open upload")
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxBodyBytes))
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Failed to read upload")
		}
		return bytes.NewReader(data), nil
	}
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

type generateRequest struct {
	Type   string `json:"type" validate:"required,oneof=products testimonials faq comparison"`
	Prompt string `json:"prompt" validate:"required"`
	Count  int    `json:"count" validate:"required,min=1,max=50"`
}

// Generate asks the configured AI provider for candidate records.
func (h *ImportHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	settings, err := h.svc.AISettings(ctx)
	if err != nil {
		return apiError(err, "load AI settings")
	}

	records, err := h.gen.Generate(ctx, settings, importer.Kind(req.Type), req.Prompt, req.Count)
	if err != nil {
		return apiError(err, "generate content")
	}
	return ok(c, records)
}
