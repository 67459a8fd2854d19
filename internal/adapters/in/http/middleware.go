package http

import (
	"log/slog"
	"net/http"

	"forwarding/internal/core/application/security"
	"forwarding/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

const securityContextKey = "securityContext"

// AuthenticationMiddleware resolves the Authorization header once per request
// and attaches the result to the echo context and to the request's
// context.Context. A rejected token leaves the request anonymous; the access
// policy decides whether that is enough.
func AuthenticationMiddleware(filter security.RequestAuthorizationFilter, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "AuthenticationMiddleware")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(securityContextKey).(identity.SecurityContext); ok {
				return next(c)
			}

			req := c.Request()
			sc, err := filter.ResolveWithCause(req.Header.Get(echo.HeaderAuthorization))
			if err != nil {
				logger.InfoContext(req.Context(), "bearer token rejected",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
				)
			}

			c.Set(securityContextKey, sc)
			c.SetRequest(req.WithContext(security.WithContext(req.Context(), sc)))
			return next(c)
		}
	}
}

// AuthorizationMiddleware applies the access policy to the matched route
// pattern. It must run after AuthenticationMiddleware.
func AuthorizationMiddleware(policy security.AccessPolicy, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "AuthorizationMiddleware")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sc := SecurityContextFrom(c)
			decision := policy.Authorize(c.Request().Method, c.Path(), sc)

			switch decision.Reason {
			case security.Unauthorized:
				return unauthorized(c)
			case security.Forbidden:
				logger.InfoContext(c.Request().Context(), "access denied",
					"method", c.Request().Method,
					"route", c.Path(),
					"subject", sc.Subject(),
					"roles", sc.Roles().Strings(),
				)
				return c.NoContent(http.StatusForbidden)
			default:
				return next(c)
			}
		}
	}
}

// SecurityContextFrom returns the context attached by
// AuthenticationMiddleware, or an anonymous one.
func SecurityContextFrom(c echo.Context) identity.SecurityContext {
	if sc, ok := c.Get(securityContextKey).(identity.SecurityContext); ok {
		return sc
	}
	sc, _ := security.FromContext(c.Request().Context())
	return sc
}
