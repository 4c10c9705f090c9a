package postgres

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		db: db,
	}
}

// CreateAuthentication persists a new authentication method for a user.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt
	auth.UpdatedAt = authM.UpdatedAt

	return nil
}

// FindAuthentication retrieves an authentication method by provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", string(provider), providerUserID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}

// FindAuthenticationByUserIDAndProvider finds the credential of a user for a provider.
func (repo *authRepository) FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, string(provider)).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find authentication by user")
	}

	return toAuthenticationDomain(&authM), nil
}

// UpdatePasswordHash replaces the hash on the user's email credential.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ? AND provider = ?", userID, string(entity.ProviderTypeEmail)).
		Updates(map[string]any{
			"password_hash": hash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// CreateRecoveryToken persists a hashed one-time recovery token.
func (repo *authRepository) CreateRecoveryToken(ctx context.Context, token *entity.RecoveryToken) error {
	tokenM := &model.RecoveryTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recovery token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRecoveryTokenByHash retrieves a recovery token whether or not it was used.
func (repo *authRepository) FindRecoveryTokenByHash(ctx context.Context, hash string) (*entity.RecoveryToken, error) {
	var tokenM model.RecoveryTokenModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", hash).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecoveryTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find recovery token")
	}

	return &entity.RecoveryToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		UsedAt:    tokenM.UsedAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// MarkRecoveryTokenUsed stamps the token as consumed. A token can be used once.
func (repo *authRepository) MarkRecoveryTokenUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecoveryTokenModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark recovery token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecoveryTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
	}
}
