package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the credential provider behind an Authentication record.
type ProviderType string

const (
	// ProviderTypeEmail is an email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is a Google account linked through an ID token.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Email for the email provider, the 'sub' claim for Google.
	PasswordHash   string // Only set when Provider is email.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// RecoveryToken is a one-time password recovery grant.
type RecoveryToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Usable reports whether the token can still be exchanged at now.
func (t *RecoveryToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
