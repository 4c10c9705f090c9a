package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
)

// WaitlistRepository defines waitlist persistence.
type WaitlistRepository interface {
	// Join inserts the entry unless the email is already present.
	// created reports whether a new row was written.
	Join(ctx context.Context, entry *entity.WaitlistEntry) (created bool, err error)
}
