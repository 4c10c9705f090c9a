// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"heyfarmer/config"
	"heyfarmer/internal/domain/lifecycle"
	"heyfarmer/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval   = 5 * time.Second
	poolSlowWaitWarnAt   = 50 * time.Millisecond
	missingPostgresError = "postgres configuration is missing"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica pools and registers ping-on-start and
// close-on-stop hooks.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New(missingPostgresError)
	}

	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go samplePoolWaits(sampleCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks. The CLI uses it for one-shot commands.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New(missingPostgresError)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-step writes go through txManager.Execute; single statements stay untransacted.
	return db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// samplePoolWaits logs when callers had to wait for a pooled connection
// since the previous sample.
func samplePoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := sqlDB.Stats()
			waits := now.WaitCount - last.WaitCount
			waited := now.WaitDuration - last.WaitDuration
			last = now

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolSlowWaitWarnAt {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("openConns", now.OpenConnections),
				slog.Int("inUseConns", now.InUse),
				slog.Int("idleConns", now.Idle),
				slog.Int("maxOpenConns", now.MaxOpenConnections),
			)
		}
	}
}
