package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"heyfarmer/internal/delivery/api/response"
	deliverycontext "heyfarmer/internal/delivery/context"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// statusClientClosedRequest is recorded when the client hung up first.
const statusClientClosedRequest = 499

// echoErrorCodes names the framework errors clients can act on.
var echoErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "RATE_LIMITED",
}

// ErrorMiddleware renders errors that escaped the handlers in the API envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their code, framework errors get a stable code and anything else is a 500
// whose cause only reaches the log.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(c, err)
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	if status == statusClientClosedRequest {
		c.Response().WriteHeader(status)

		return
	}

	_ = response.Error(c, status, code, message, details)
}

func (m *ErrorMiddleware) classify(c echo.Context, err error) (int, string, string, any) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		code, ok := echoErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}

		return httpErr.Code, code, message, nil
	}

	if errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil {
		return statusClientClosedRequest, "", "", nil
	}

	m.logUnhandled(c, err)

	return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
