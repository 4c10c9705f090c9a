package postgres

import (
	"context"

	"heyfarmer/internal/errors"
	"heyfarmer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates the pgcrypto extension used for UUID defaults and brings
// every table and index up to date with the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)

	if err := conn.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return errors.Wrap(err, "failed to create pgcrypto extension")
	}

	if err := conn.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
