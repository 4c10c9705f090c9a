package main

import (
	"context"
	"log/slog"
	"os"

	"heyfarmer/config"
	"heyfarmer/internal/delivery"
	"heyfarmer/internal/delivery/api"
	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/router/handler"
	"heyfarmer/internal/domain/marketplace"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/infra/auth"
	"heyfarmer/internal/infra/auth/google"
	logs "heyfarmer/internal/infra/log"
	"heyfarmer/internal/infra/metrics"
	"heyfarmer/internal/infra/persistence/postgres"
	"heyfarmer/internal/infra/presence"
	"heyfarmer/internal/infra/pubsub"
	"heyfarmer/internal/infra/qrcode"
	"heyfarmer/internal/infra/realtime"
	"heyfarmer/internal/infra/storage"
	"heyfarmer/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newDatabasePinger,
		metrics.NewRecorder,
	)
}

// newDatabasePinger exposes the primary pool to readiness probes.
func newDatabasePinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewPostRepository,
			postgres.NewSavedPostRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewWaitlistRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			newQRCodeService,
			metrics.NewMarketplaceMetrics,
			marketplace.NewVisibilityResolver,
			realtime.NewHub,
			realtime.NewBroadcaster,
			presence.New,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewListingService,
			impl.NewMessagingService,
			impl.NewContactService,
			impl.NewMediaService,
			impl.NewWaitlistService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewListingHandler,
			handler.NewConversationHandler,
			handler.NewContactHandler,
			handler.NewCountyHandler,
			handler.NewWaitlistHandler,
			handler.NewMediaHandler,
			handler.NewDeviceHandler,
			handler.NewRealtimeHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
