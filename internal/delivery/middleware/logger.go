package middleware

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed constantly and only logged when they fail.
var quietPaths = []string{"/health", "/metrics"}

// secretParams never reach the access log.
var secretParams = []string{"access_token", "token"}

// LoggerMiddleware writes one access line per request through the request-scoped logger.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the status before it is logged.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	case isQuiet(req.URL.Path):
		if !m.debug {
			return
		}
		level = slog.LevelDebug
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
		}
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", fields...)
}

func redactQuery(query url.Values) string {
	for _, name := range secretParams {
		if query.Has(name) {
			query.Set(name, "REDACTED")
		}
	}

	return query.Encode()
}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
