// Package worker serves the Pub/Sub push endpoint that turns domain events
// into device notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"heyfarmer/config"
	"heyfarmer/internal/delivery"
	"heyfarmer/internal/delivery/middleware"
	"heyfarmer/internal/delivery/worker/handler"
	"heyfarmer/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// PushPath receives push subscription deliveries.
	PushPath = "/push"

	// pushBodyLimit is well above the largest envelope the API publishes.
	pushBodyLimit = "256K"
)

type pushServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker delivery and registers its shutdown.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// NewEcho wires the push route behind recovery, request tagging, access
// logging and a body limit.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "worker"})
	})
	e.POST(PushPath, push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

// Serve blocks until the server stops. A graceful shutdown is not an error.
func (s *pushServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Worker listening for pushes", slog.String("host_port", hostPort), slog.String("path", PushPath))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "worker server failed")
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
