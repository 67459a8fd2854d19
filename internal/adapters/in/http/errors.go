package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"forwarding/internal/adapters/in/http/api"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const badCredentialsMessage = "Bad credentials"

// writeError renders a use case error. Authentication failures share one
// message whatever the internal reason; denials carry no body.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, identity.ErrAuthenticationFailed):
		return c.JSON(http.StatusUnauthorized, api.Error{
			Code:    http.StatusUnauthorized,
			Message: badCredentialsMessage,
		})
	case errors.Is(err, identity.ErrUnauthorized):
		return unauthorized(c)
	case errors.Is(err, identity.ErrForbidden):
		s.logger.InfoContext(c.Request().Context(), "request forbidden",
			"path", c.Path(),
			"subject", SecurityContextFrom(c).Subject(),
			"error", err,
		)
		return c.NoContent(http.StatusForbidden)
	case errors.Is(err, errs.ErrInfrastructure), errors.Is(err, context.DeadlineExceeded):
		s.logger.ErrorContext(c.Request().Context(), "dependency unavailable", "path", c.Path(), "error", err)
		return jsonError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrIllegalTransition), errors.Is(err, errs.ErrObjectAlreadyExists):
		return jsonError(c, http.StatusConflict, err.Error())
	case errors.Is(err, carrier.ErrCarrierDocumentsExpired):
		return jsonError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return jsonError(c, http.StatusBadRequest, err.Error())
	default:
		s.logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		return jsonError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func jsonError(c echo.Context, code int, message string) error {
	return c.JSON(code, api.Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return jsonError(c, http.StatusBadRequest, message)
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.NoContent(http.StatusUnauthorized)
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes or path parameter binding failures, in the api.Error format.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "HTTPErrorHandler")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = jsonError(c, code, message)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
