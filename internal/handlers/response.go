package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/reviewhub/internal/ai"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// apiError maps a domain error onto an HTTP error. Store failures are
// logged and reported without detail.
func apiError(err error, op string) error {
	status, message := classify(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		slog.Error("failed to "+op, "error", err)
		return echo.NewHTTPError(status, "Failed to "+op)
	}
	if status == http.StatusBadGateway {
		slog.Warn("AI generation failed", "op", op, "error", err)
	}
	return echo.NewHTTPError(status, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, cms.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, cms.ErrInvalidRequest),
		errors.Is(err, content.ErrUnknownModule),
		errors.Is(err, importer.ErrUnknownKind),
		errors.Is(err, ai.ErrUnsupportedKind):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ai.ErrConfigMissing):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, importer.ErrParse):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, ai.ErrParse), errors.Is(err, ai.ErrUpstream):
		return http.StatusBadGateway, err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// ErrorHandler renders API errors as envelopes and page errors as text.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			slog.Debug("http error", "code", code, "internal", he.Internal)
		}
	} else {
		slog.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(code)
	case strings.HasPrefix(c.Request().URL.Path, "/api/"):
		writeErr = c.JSON(code, Envelope{Success: false, Error: message})
	default:
		writeErr = c.String(code, message)
	}
	if writeErr != nil {
		slog.Error("failed to write error response", "error", writeErr)
	}
}

// Validator adapts go-playground/validator to echo.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s: failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
