package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository defines session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a live refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends one session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID ends every session of a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessionsByUserID returns the number of non-expired sessions of a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpiredRefreshTokens removes expired sessions and returns how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
