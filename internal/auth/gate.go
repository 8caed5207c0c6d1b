package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	CookieName  = "admin-auth"
	cookieValue = "authenticated"
	sessionTTL  = 7 * 24 * time.Hour
)

// Gate guards the admin area and API writes with one shared secret. A
// successful login is remembered in a marker cookie.
type Gate struct {
	Password string
	Secure   bool
}

func NewGate(password string, secure bool) *Gate {
	return &Gate{Password: password, Secure: secure}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the submitted password and sets the session cookie.
func (g *Gate) Login(c echo.Context) error {
	if g.Password == "" {
		slog.Error("admin password is not configured")
		return echo.NewHTTPError(http.StatusInternalServerError, "Server configuration error")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(g.Password)) != 1 {
		slog.Warn("failed admin login", "ip", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect password")
	}

	c.SetCookie(g.cookie(cookieValue, int(sessionTTL.Seconds())))
	slog.Info("admin logged in", "ip", c.RealIP())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Logout expires the session cookie.
func (g *Gate) Logout(c echo.Context) error {
	c.SetCookie(g.cookie("", -1))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (g *Gate) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   g.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware redirects anonymous visitors away from the admin area and
// rejects anonymous API writes before any handler runs.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authed := hasSession(c)
			c.Set(AuthenticatedKey, authed)
			if authed {
				return next(c)
			}

			req := c.Request()
			path := req.URL.Path

			if isAdminPath(path) {
				return c.Redirect(http.StatusFound, "/admin-login?from="+url.QueryEscape(path))
			}

			if strings.HasPrefix(path, "/api/") && isWrite(req.Method) && !isLoginPath(path) {
				slog.Debug("rejected anonymous write", "method", req.Method, "path", path)
				return c.JSON(http.StatusForbidden, map[string]any{"success": false, "error": "Unauthorized"})
			}

			return next(c)
		}
	}
}

func hasSession(c echo.Context) bool {
	cookie, err := c.Cookie(CookieName)
	return err == nil && cookie.Value == cookieValue
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

func isLoginPath(path string) bool {
	return path == "/api/auth" || path == "/api/admin-auth"
}

func isWrite(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
