package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const resetPasswordPath = "/reset-password"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	profileRepo       repository.ProfileRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	publisher         service.EventPublisher
	maxActiveSessions int
	minPasswordLength int
	recoveryTTL       time.Duration
	siteURL           string
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	ProfileRepo       repository.ProfileRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		profileRepo:       params.ProfileRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		publisher:         params.Publisher,
		now:               time.Now,
		logger:            params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.maxActiveSessions = params.Config.Auth.MaxActiveSessions
		srv.minPasswordLength = params.Config.Auth.MinPasswordLength
		srv.recoveryTTL = params.Config.Auth.RecoveryTokenTTL
	}
	if params.Config != nil && params.Config.Site != nil {
		srv.siteURL = strings.TrimRight(params.Config.Site.BaseURL, "/")
	}
	if srv.recoveryTTL <= 0 {
		srv.recoveryTTL = time.Hour
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) validatePassword(password string) error {
	if len(password) < srv.minPasswordLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}

	return nil
}

// SignUp creates the account, its email credential and its profile in one transaction.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting sign-up", slog.String("email", email))

	if err := srv.validatePassword(input.Password); err != nil {
		return nil, err
	}

	meta := input.Metadata
	meta.Role = entity.ParseRole(string(meta.Role))
	if err := validateCounty(meta.County); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var newUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, email); findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		user := &entity.User{Email: email, Metadata: meta}
		if createErr := userRepo.Create(ctx, user); createErr != nil {
			if errors.Is(createErr, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(createErr, "failed to create user")
		}

		credential := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if createErr := repoFactory.AuthRepo().CreateAuthentication(ctx, credential); createErr != nil {
			return errors.Wrap(createErr, "failed to create email credential")
		}

		if _, ensureErr := repoFactory.ProfileRepo().Ensure(ctx, entity.NewProfileFromMetadata(user.ID, email, meta)); ensureErr != nil {
			return errors.Wrap(ensureErr, "failed to create profile")
		}

		newUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	return srv.issueSession(ctx, newUser, meta.Role)
}

// SignIn verifies an email credential and opens a session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	var (
		credential *entity.Authentication
		user       *entity.User
	)
	// Read on the primary so a sign-in right after sign-up does not hit a lagging replica.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		credential, findErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if errors.Is(findErr, repository.ErrAuthNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		user, findErr = repoFactory.UserRepo().FindByID(ctx, credential.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign-in failed")
	}

	// bcrypt is CPU-bound, so the check runs outside the transaction.
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	return srv.issueSession(ctx, user, srv.roleOf(ctx, user.ID))
}

// GoogleSignIn verifies a Google ID token, creating or linking the account on first use.
func (srv *authService) GoogleSignIn(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)

		return findErr
	})
	if err != nil {
		srv.log(ctx).Error("Google sign-in failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return srv.issueSession(ctx, user, srv.roleOf(ctx, user.ID))
}

func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	credential, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, credential.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find user for Google credential")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find Google credential")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Email:    email,
			Metadata: entity.SignupMetadata{Name: oauthUser.Name, Avatar: oauthUser.AvatarURL, Role: entity.RoleConsumer},
		}
		if createErr := userRepo.Create(ctx, user); createErr != nil {
			return nil, errors.Wrap(createErr, "failed to create user for Google sign-in")
		}
		srv.log(ctx).Info("Created user from Google sign-in", slog.Any("userID", user.ID))
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	link := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to create Google credential")
	}

	return user, nil
}

// roleOf reads the profile role. A user without a readable profile is a consumer.
func (srv *authService) roleOf(ctx context.Context, userID uuid.UUID) entity.Role {
	role, err := srv.profileRepo.FindRole(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Role lookup failed", slog.Any("userID", userID), slog.Any("error", err))
		}

		return entity.RoleConsumer
	}

	return entity.ParseRole(string(role))
}

func (srv *authService) issueSession(ctx context.Context, user *entity.User, role entity.Role) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshToken); err != nil {
		srv.log(ctx).Warn("Failed to persist session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist refresh token")
	}
	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Role:         role,
	}, nil
}

func (srv *authService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		return srv.refreshTokenRepo.CreateRefreshToken(ctx, token)
	}

	// Count and insert in one transaction when the session limit is enabled.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		active, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded
		}

		return refreshRepo.CreateRefreshToken(ctx, token)
	})
}

// Refresh issues a new access token. The refresh token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken)); err != nil {
		if errors.IsAny(err, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	role := srv.roleOf(ctx, user.ID)
	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Role:         role,
	}, nil
}

// SignOut ends the session of refreshToken.
func (srv *authService) SignOut(ctx context.Context, refreshToken string) error {
	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// An invalid token may still be stored, so it is deleted anyway.
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// Session describes the signed-in user.
func (srv *authService) Session(ctx context.Context, userID uuid.UUID) (*usecase.SessionOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	active, err := srv.refreshTokenRepo.CountActiveSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active sessions")
	}

	return &usecase.SessionOutput{
		User:           user,
		Role:           srv.roleOf(ctx, userID),
		ActiveSessions: active,
	}, nil
}

// UpdatePassword replaces the email credential after checking the current password.
func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) error {
	if err := srv.validatePassword(input.NewPassword); err != nil {
		return err
	}

	var credential *entity.Authentication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		credential, findErr = repoFactory.AuthRepo().FindAuthenticationByUserIDAndProvider(ctx, userID, entity.ProviderTypeEmail)
		if errors.Is(findErr, repository.ErrAuthNotFound) {
			return domainerrors.ErrInvalidCredentials.WithDetails("account has no password")
		}

		return findErr
	})
	if err != nil {
		return errors.Wrap(err, "failed to load email credential")
	}

	if !srv.hasher.Check(input.CurrentPassword, credential.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AuthRepo().UpdatePasswordHash(ctx, userID, hashedPassword)
	})
}

// RequestPasswordRecovery stores a one-time token and publishes the reset
// link. Unknown emails succeed without doing anything.
func (srv *authService) RequestPasswordRecovery(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password recovery for unknown email ignored")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	rawToken, err := newOpaqueToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate recovery token")
	}

	grant := &entity.RecoveryToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: srv.now().Add(srv.recoveryTTL),
	}
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AuthRepo().CreateRecoveryToken(ctx, grant)
	}); err != nil {
		return errors.Wrap(err, "failed to store recovery token")
	}

	event, err := service.NewEvent(constants.EventTypePasswordRecoveryRequested, deliverycontext.GetRequestIDFromContext(ctx), &service.PasswordRecoveryPayload{
		UserID:    user.ID.String(),
		Email:     user.Email,
		ResetURL:  srv.siteURL + resetPasswordPath + "?token=" + url.QueryEscape(rawToken),
		ExpiresAt: grant.ExpiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "failed to build recovery event")
	}
	if err := srv.publisher.Publish(ctx, event.WithOrderingKey(user.ID.String())); err != nil {
		return errors.Wrap(err, "failed to publish recovery event")
	}
	srv.log(ctx).Info("Password recovery requested", slog.Any("userID", user.ID))

	return nil
}

// ExchangeRecoveryToken consumes a recovery token, sets the new password and
// ends every session of the user.
func (srv *authService) ExchangeRecoveryToken(ctx context.Context, input *usecase.ExchangeRecoveryInput) error {
	if err := srv.validatePassword(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		grant, findErr := authRepo.FindRecoveryTokenByHash(ctx, hashToken(input.Token))
		if errors.Is(findErr, repository.ErrRecoveryTokenNotFound) {
			return domainerrors.ErrRecoveryTokenInvalid
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find recovery token")
		}
		if !grant.Usable(srv.now()) {
			return domainerrors.ErrRecoveryTokenInvalid
		}

		if markErr := authRepo.MarkRecoveryTokenUsed(ctx, grant.ID); markErr != nil {
			if errors.Is(markErr, repository.ErrRecoveryTokenNotFound) {
				return domainerrors.ErrRecoveryTokenInvalid
			}

			return errors.Wrap(markErr, "failed to consume recovery token")
		}

		if updateErr := srv.setPassword(ctx, repoFactory, grant.UserID, hashedPassword); updateErr != nil {
			return updateErr
		}

		return repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, grant.UserID)
	})
	if err != nil {
		srv.log(ctx).Warn("Recovery token exchange failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to exchange recovery token")
	}

	return nil
}

// setPassword updates the email credential, creating one for accounts that
// only had a Google credential.
func (srv *authService) setPassword(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, hashedPassword string) error {
	authRepo := repoFactory.AuthRepo()

	err := authRepo.UpdatePasswordHash(ctx, userID, hashedPassword)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to update password")
	}

	user, err := repoFactory.UserRepo().FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	return authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   hashedPassword,
	})
}
