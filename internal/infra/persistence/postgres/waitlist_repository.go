package postgres

import (
	"context"
	"strings"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// waitlistRepository implements the repository.WaitlistRepository interface.
type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{
		db: db,
	}
}

// Join inserts the entry unless the email is already on the list.
func (repo *waitlistRepository) Join(ctx context.Context, entry *entity.WaitlistEntry) (bool, error) {
	entryM := &model.WaitlistModel{
		Email:  strings.ToLower(strings.TrimSpace(entry.Email)),
		Name:   entry.Name,
		Role:   string(entry.Role),
		County: entry.County,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(entryM)
	if result.Error != nil {
		return false, postQueryError(result.Error, "failed to join waitlist")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	entry.ID = entryM.ID
	entry.Email = entryM.Email
	entry.CreatedAt = entryM.CreatedAt

	return true, nil
}
