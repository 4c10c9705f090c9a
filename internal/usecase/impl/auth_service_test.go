package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"heyfarmer/config"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	mockRepo "heyfarmer/internal/mocks/repository"
	mockSvc "heyfarmer/internal/mocks/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service           usecase.AuthUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	profileRepo       *mockRepo.MockProfileRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	publisher         *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T, maxSessions int) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		userRepo:          mockRepo.NewMockUserRepository(t),
		refreshTokenRepo:  mockRepo.NewMockRefreshTokenRepository(t),
		profileRepo:       mockRepo.NewMockProfileRepository(t),
		hasher:            mockSvc.NewMockPasswordHasher(t),
		tokenService:      mockSvc.NewMockTokenService(t),
		googleAuthService: mockSvc.NewMockOAuthAuthService(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:         fx.txManager,
		UserRepo:          fx.userRepo,
		RefreshTokenRepo:  fx.refreshTokenRepo,
		ProfileRepo:       fx.profileRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.googleAuthService,
		Publisher:         fx.publisher,
		Config: &config.Config{
			Auth: &config.AuthConfig{
				MaxActiveSessions: maxSessions,
				MinPasswordLength: 8,
				RecoveryTokenTTL:  30 * time.Minute,
			},
			Site: &config.SiteConfig{BaseURL: "https://heyfarmer.example"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

// expectTokens stubs token generation and the direct refresh token insert.
func (fx authServiceFixtures) expectTokens(userID uuid.UUID, role entity.Role) {
	fx.tokenService.EXPECT().GenerateTokens(userID, role.String()).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == hashToken("refresh")
		})).
		Return(nil)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignUpInput{
		Email:    "  Grower@Example.com ",
		Password: "longenough",
		Metadata: entity.SignupMetadata{Name: "Pat", Role: entity.RoleMarketGardener, County: "king"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "grower@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.Provider == entity.ProviderTypeEmail && auth.PasswordHash == "hashed"
				})).
				Return(nil)
			mockProfileRepo.EXPECT().
				Ensure(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
					return profile.ID == userID && profile.Role == entity.RoleMarketGardener
				})).
				RunAndReturn(func(_ context.Context, profile *entity.Profile) (*entity.Profile, error) {
					return profile, nil
				})

			return fn(mockFactory)
		})
	fx.expectTokens(userID, entity.RoleMarketGardener)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "grower@example.com", output.User.Email)
	assert.Equal(t, entity.RoleMarketGardener, output.Role)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	_, err = fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "a@b.c",
		Password: "longenough",
		Metadata: entity.SignupMetadata{County: "narnia"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("longenough").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "taken@example.com", Password: "longenough"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_SignIn(t *testing.T) {
	userID := uuid.New()
	credential := &entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	expectLookup := func(t *testing.T, fx authServiceFixtures, authErr error) {
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockAuthRepo := mockRepo.NewMockAuthRepository(t)
				mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

				if authErr != nil {
					mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "pat@example.com").Return(nil, authErr)

					return fn(mockFactory)
				}

				mockUserRepo := mockRepo.NewMockUserRepository(t)
				mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
				mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "pat@example.com").Return(credential, nil)
				mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "pat@example.com"}, nil)

				return fn(mockFactory)
			})
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		expectLookup(t, fx, nil)
		fx.hasher.EXPECT().Check("longenough", "hashed").Return(true)
		fx.profileRepo.EXPECT().FindRole(mock.Anything, userID).Return(entity.RoleProductionFarmer, nil)
		fx.expectTokens(userID, entity.RoleProductionFarmer)

		output, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "pat@example.com", Password: "longenough"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleProductionFarmer, output.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		expectLookup(t, fx, repository.ErrAuthNotFound)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "pat@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		expectLookup(t, fx, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "pat@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_SessionLimit(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "pat@example.com"}

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.OAuthUser{ID: "sub-1", Email: user.Email}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo).Maybe()
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo).Maybe()
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo).Maybe()

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-1").
				Return(&entity.Authentication{UserID: user.ID}, nil).Maybe()
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Maybe()
			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil).Maybe()

			return fn(mockFactory)
		}).Times(2)
	fx.profileRepo.EXPECT().FindRole(ctx, user.ID).Return(entity.Role(""), repository.ErrProfileNotFound)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleConsumer.String()).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	_, err := fx.service.GoogleSignIn(ctx, "id-token")

	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestAuthService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("signature mismatch"))

	_, err := fx.service.GoogleSignIn(ctx, "bad")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleSignIn_LinksExistingEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "pat@example.com"}

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.OAuthUser{ID: "sub-2", Email: "Pat@Example.com", Name: "Pat"}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-2").Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().FindByEmail(ctx, "pat@example.com").Return(existing, nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.UserID == existing.ID && auth.Provider == entity.ProviderTypeGoogle
				})).
				Return(nil)

			return fn(mockFactory)
		})
	fx.profileRepo.EXPECT().FindRole(ctx, existing.ID).Return(entity.RoleConsumer, nil)
	fx.expectTokens(existing.ID, entity.RoleConsumer)

	output, err := fx.service.GoogleSignIn(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("success keeps refresh token", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).Return(&entity.RefreshToken{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.profileRepo.EXPECT().FindRole(ctx, userID).Return(entity.RoleBackyardGrower, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, "backyard_grower").Return("new-access", "unused", nil)

		output, err := fx.service.Refresh(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.Refresh(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(nil, errors.New("expired"))
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, hashToken("refresh")).Return(nil)

	assert.NoError(t, fx.service.SignOut(ctx, "refresh"))
}

func TestAuthService_RequestPasswordRecovery(t *testing.T) {
	t.Run("unknown email is silent", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		assert.NoError(t, fx.service.RequestPasswordRecovery(ctx, "Ghost@example.com"))
	})

	t.Run("publishes reset link", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "pat@example.com"}

		var storedHash string
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockAuthRepo := mockRepo.NewMockAuthRepository(t)
				mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
				mockAuthRepo.EXPECT().
					CreateRecoveryToken(ctx, mock.AnythingOfType("*entity.RecoveryToken")).
					Run(func(_ context.Context, token *entity.RecoveryToken) {
						storedHash = token.TokenHash
					}).
					Return(nil)

				return fn(mockFactory)
			})
		fx.publisher.EXPECT().
			Publish(ctx, mock.AnythingOfType("*service.Event")).
			Run(func(_ context.Context, event *service.Event) {
				assert.Equal(t, constants.EventTypePasswordRecoveryRequested, event.Type)

				var payload service.PasswordRecoveryPayload
				require.NoError(t, json.Unmarshal(event.Payload, &payload))
				require.True(t, strings.HasPrefix(payload.ResetURL, "https://heyfarmer.example/reset-password?token="))

				raw := strings.TrimPrefix(payload.ResetURL, "https://heyfarmer.example/reset-password?token=")
				assert.Equal(t, storedHash, hashToken(raw))
			}).
			Return(nil)

		assert.NoError(t, fx.service.RequestPasswordRecovery(ctx, user.Email))
	})
}

func TestAuthService_ExchangeRecoveryToken(t *testing.T) {
	userID := uuid.New()

	expectExchange := func(t *testing.T, fx authServiceFixtures, grant *entity.RecoveryToken, updateErr error) {
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockAuthRepo := mockRepo.NewMockAuthRepository(t)
				mockUserRepo := mockRepo.NewMockUserRepository(t)
				mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

				mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
				mockFactory.EXPECT().UserRepo().Return(mockUserRepo).Maybe()
				mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo).Maybe()

				mockAuthRepo.EXPECT().FindRecoveryTokenByHash(ctx, hashToken("raw-token")).Return(grant, nil)
				if !grant.Usable(time.Now()) {
					return fn(mockFactory)
				}

				mockAuthRepo.EXPECT().MarkRecoveryTokenUsed(ctx, grant.ID).Return(nil)
				mockAuthRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new-hash").Return(updateErr)
				if errors.Is(updateErr, repository.ErrAuthNotFound) {
					mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "pat@example.com"}, nil)
					mockAuthRepo.EXPECT().
						CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
							return auth.Provider == entity.ProviderTypeEmail && auth.ProviderUserID == "pat@example.com"
						})).
						Return(nil)
				}
				mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

				return fn(mockFactory)
			})
	}

	input := &usecase.ExchangeRecoveryInput{Token: "raw-token", NewPassword: "brand-new-pass"}

	t.Run("success revokes sessions", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)
		expectExchange(t, fx, &entity.RecoveryToken{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		assert.NoError(t, fx.service.ExchangeRecoveryToken(context.Background(), input))
	})

	t.Run("google-only account gets email credential", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)
		expectExchange(t, fx, &entity.RecoveryToken{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, repository.ErrAuthNotFound)

		assert.NoError(t, fx.service.ExchangeRecoveryToken(context.Background(), input))
	})

	t.Run("used token", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		usedAt := time.Now().Add(-time.Minute)
		fx.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)
		expectExchange(t, fx, &entity.RecoveryToken{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour), UsedAt: &usedAt}, nil)

		err := fx.service.ExchangeRecoveryToken(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrRecoveryTokenInvalid)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthenticationByUserIDAndProvider(ctx, userID, entity.ProviderTypeEmail).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "old-hash"}, nil).Maybe()
			mockAuthRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new-hash").Return(nil).Maybe()

			return fn(mockFactory)
		}).Times(2)
	fx.hasher.EXPECT().Check("old-password", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)

	err := fx.service.UpdatePassword(ctx, userID, &usecase.UpdatePasswordInput{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	assert.NoError(t, err)
}
