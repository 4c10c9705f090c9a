// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"heyfarmer/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an email account.
type SignUpInput struct {
	Email    string
	Password string
	Metadata entity.SignupMetadata
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput defines a password change of a signed-in user.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ExchangeRecoveryInput redeems a password recovery link.
type ExchangeRecoveryInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful sign-in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Role         entity.Role
}

// SessionOutput describes the signed-in user.
type SessionOutput struct {
	User           *entity.User
	Role           entity.Role
	ActiveSessions int
}

// AuthUsecase defines the account and session operations.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	GoogleSignIn(ctx context.Context, idToken string) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	SignOut(ctx context.Context, refreshToken string) error
	Session(ctx context.Context, userID uuid.UUID) (*SessionOutput, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) error
	RequestPasswordRecovery(ctx context.Context, email string) error
	ExchangeRecoveryToken(ctx context.Context, input *ExchangeRecoveryInput) error
}
