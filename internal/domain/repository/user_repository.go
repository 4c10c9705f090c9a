// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrFeatureUnavailable is returned when the backing relation has not been migrated yet.
	ErrFeatureUnavailable = errors.New("feature unavailable")
)

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills its generated fields.
	Create(ctx context.Context, user *entity.User) error
}
