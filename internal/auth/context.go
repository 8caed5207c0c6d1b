package auth

import "github.com/labstack/echo/v4"

// AuthenticatedKey holds the gate's verdict for the current request.
const AuthenticatedKey = "is_authenticated"

// IsAuthenticated reports whether the request carries an admin session.
// It falls back to reading the cookie when the gate has not run.
func IsAuthenticated(c echo.Context) bool {
	if v, ok := c.Get(AuthenticatedKey).(bool); ok {
		return v
	}
	return hasSession(c)
}
