package google

import (
	"context"
	"log/slog"
	"testing"

	"heyfarmer/config"
	"heyfarmer/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newTestService(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "grower@example.com",
				"name":           "Pat Grower",
				"picture":        "https://example.com/pat.png",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "grower@example.com", user.Email)
	assert.Equal(t, "Pat Grower", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
		want    string
	}{
		{
			name: "validation failure",
			err:  errors.New("idtoken: token expired"),
			want: "token verification failed",
		},
		{
			name:    "foreign issuer",
			payload: &idtoken.Payload{Issuer: "https://evil.example", Claims: map[string]any{"email_verified": true}},
			want:    "invalid issuer",
		},
		{
			name:    "unverified email",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": "false"}},
			want:    "email not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "raw-token")
			require.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthService_MissingClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
