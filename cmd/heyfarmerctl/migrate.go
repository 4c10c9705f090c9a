package main

import (
	"log/slog"

	"heyfarmer/config"
	logs "heyfarmer/internal/infra/log"
	"heyfarmer/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Creates the pgcrypto extension and brings every table and index up to
date. Connection settings come from config.yaml and the environment, the
same way the API server reads them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(func(db *gorm.DB, logger *slog.Logger) error {
				if err := postgres.Migrate(cmd.Context(), db); err != nil {
					return err
				}
				logger.Info("Schema is up to date")

				return nil
			})
		},
	}
}

// withDatabase loads the server configuration, connects and runs fn. The
// connection is closed when fn returns.
func withDatabase(fn func(db *gorm.DB, logger *slog.Logger) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return fn(db, logger)
}
