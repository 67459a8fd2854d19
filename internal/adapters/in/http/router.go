package http

import (
	"log/slog"

	"forwarding/internal/adapters/in/http/api"
	"forwarding/internal/core/application/security"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes installs the error handler, the authentication and
// authorization middlewares, the health check and the API routes.
// Routes added to e later are guarded too.
func RegisterRoutes(
	e *echo.Echo,
	server *Server,
	filter security.RequestAuthorizationFilter,
	policy security.AccessPolicy,
	logger *slog.Logger,
) {
	e.HTTPErrorHandler = HTTPErrorHandler(logger)
	e.Use(
		AuthenticationMiddleware(filter, logger),
		AuthorizationMiddleware(policy, logger),
	)

	e.GET("/health", Health)
	api.RegisterHandlers(e, server)
}
