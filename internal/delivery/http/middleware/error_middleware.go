package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/context"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/response"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware converts errors escaping handlers into the unified
// response envelope. Registered as echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is the central error handler for the HTTP layer.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		_ = response.Error(c, httpErr.Code, http.StatusText(httpErr.Code), message, "")

		return
	}

	logger.Error("unhandled error", slog.Any("error", err))
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "internal error")
}
