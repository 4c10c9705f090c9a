package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrRecoveryTokenNotFound is returned when a recovery token does not exist.
	ErrRecoveryTokenNotFound = errors.New("recovery token not found")
)

// AuthRepository defines the operations on credentials and recovery grants.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUserIDAndProvider finds the credential of a user for a provider.
	FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the email credential hash of a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error

	// CreateRecoveryToken persists a hashed one-time recovery token.
	CreateRecoveryToken(ctx context.Context, token *entity.RecoveryToken) error

	// FindRecoveryTokenByHash retrieves a recovery token by hash, used or not.
	FindRecoveryTokenByHash(ctx context.Context, hash string) (*entity.RecoveryToken, error)

	// MarkRecoveryTokenUsed stamps the token as consumed.
	MarkRecoveryTokenUsed(ctx context.Context, id uuid.UUID) error
}
