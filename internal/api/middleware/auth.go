package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sliate-rat/university-api/internal/core/domain"
)

// HeaderAuthToken is the header the SPA sends the JWT in. The frontend
// predates this service and uses x-auth-token rather than Authorization.
const HeaderAuthToken = "x-auth-token"

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxPrincipalID   = "principal_id"
	CtxPrincipalRole = "principal_role"
)

// Auth validates the JWT from the x-auth-token header and injects the
// principal's id and role into the request context. Verification is
// stateless; rejections stay generic so callers learn nothing about why.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(HeaderAuthToken)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrTokenInvalid
			}

			id, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			if id == "" || role == "" {
				return domain.ErrTokenInvalid
			}

			c.Set(CtxPrincipalID, id)
			c.Set(CtxPrincipalRole, role)

			return next(c)
		}
	}
}
