package auth

import (
	"testing"
	"time"

	"heyfarmer/config"
	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: 48 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "market_gardener")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "market_gardener", accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsSwappedTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "consumer")
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())

	cfg := newTestConfig()
	cfg.Auth = nil
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
