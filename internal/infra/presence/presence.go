// Package presence stores short-lived typing indicators.
package presence

import (
	"context"
	"log/slog"

	"heyfarmer/config"
	"heyfarmer/internal/domain/lifecycle"
	"heyfarmer/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis store when an address is configured and the
// in-process store otherwise.
func New(params Params) service.TypingStore {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, typing indicators are kept in memory")

		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStore(client)
}
