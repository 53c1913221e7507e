package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/api/middleware"
)

// ctxPrincipal extracts the identity injected by the Auth middleware. A
// missing id proves the middleware did not run on this route, which is a
// wiring bug surfaced as 401 rather than a panic.
func ctxPrincipal(c echo.Context) (id, role string, err error) {
	id, _ = c.Get(middleware.CtxPrincipalID).(string)
	role, _ = c.Get(middleware.CtxPrincipalRole).(string)
	if id == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
	}
	return id, role, nil
}
