// Package google verifies Google ID tokens presented by clients at sign-in.
package google

import (
	"context"
	"log/slog"

	"heyfarmer/config"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks the signature, audience and expiry of the token against
// Google's published keys and requires a verified email.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload, "email"),
		Name:          stringClaim(payload, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     stringClaim(payload, "picture"),
		EmailVerified: boolClaim(payload, "email_verified"),
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func stringClaim(payload *idtoken.Payload, key string) string {
	v, _ := payload.Claims[key].(string)

	return v
}

func boolClaim(payload *idtoken.Payload, key string) bool {
	switch v := payload.Claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
