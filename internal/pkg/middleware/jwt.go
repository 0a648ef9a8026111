package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/jwt"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
)

// Context keys set by the auth middlewares
const (
	ContextUserID   = "user_id"
	ContextEntitled = "entitled"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. It rejects
// requests without a valid bearer token; use OptionalJWTMiddleware on routes
// that serve anonymous users too.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := jwtpkg.UserIDFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id claim")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextEntitled, jwtpkg.IsEntitled(claims))

			return next(c)
		}
	}
}

// OptionalJWTMiddleware extracts identity and entitlement when a valid token
// is present and treats the request as anonymous/unentitled otherwise. The
// entitlement flag set here is advisory for read paths only; write-path
// guards are enforced again inside the usecase.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextEntitled, false)

			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwtpkg.ValidateToken(parts[1], config.Secret); err == nil {
					if userID, err := jwtpkg.UserIDFromClaims(claims); err == nil {
						c.Set(ContextUserID, userID)
					}
					c.Set(ContextEntitled, jwtpkg.IsEntitled(claims))
				}
			}

			return next(c)
		}
	}
}
