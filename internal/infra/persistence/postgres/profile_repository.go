package postgres

import (
	"context"
	"strings"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultFarmerLimit = 100

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves the full profile, private fields included.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		return nil, profileLookupError(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// FindByIDs retrieves several profiles keyed by id.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	result := make(map[uuid.UUID]*entity.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrFeatureUnavailable
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profiles")
	}

	for _, profileM := range profileModels {
		result[profileM.ID] = toProfileDomain(profileM)
	}

	return result, nil
}

// FindRole returns only the role column of a profile.
func (repo *profileRepository) FindRole(ctx context.Context, id uuid.UUID) (entity.Role, error) {
	var row struct{ Role string }
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Select("role").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		return "", profileLookupError(err, "failed to find profile role")
	}

	return entity.Role(row.Role), nil
}

// Ensure inserts the profile unless a row with its id exists, then returns the
// stored row. Both steps run on the primary so a concurrent insert is visible.
func (repo *profileRepository) Ensure(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	profileM := fromProfileDomain(profile)

	conn := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	if err := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(profileM).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrFeatureUnavailable
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure profile")
	}

	var stored model.ProfileModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", profile.ID).First(&stored).Error; err != nil {
		return nil, profileLookupError(err, "failed to read ensured profile")
	}

	return toProfileDomain(&stored), nil
}

// Update overwrites the mutable fields of an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Select("name", "farm_name", "avatar_url", "bio", "role", "county", "city",
			"exact_address", "phone", "email", "grow_tags",
			"show_phone", "show_email", "show_platform_message",
			"show_in_marketplace", "allow_reviews", "include_in_search", "updated_at").
		Updates(profileM)
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return repository.ErrFeatureUnavailable
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SearchFarmers lists farmer-role profiles that opted into marketplace search.
func (repo *profileRepository) SearchFarmers(ctx context.Context, query repository.FarmerQuery) ([]*entity.Profile, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultFarmerLimit
	}

	farmerRoles := make([]string, 0, len(entity.AllRoles))
	for _, role := range entity.FarmerRoles() {
		farmerRoles = append(farmerRoles, string(role))
	}

	tx := repo.db.WithContext(ctx).
		Where("role IN ?", farmerRoles).
		Where("show_in_marketplace AND include_in_search")
	if query.County != "" {
		tx = tx.Where("county = ?", query.County)
	}
	if len(query.Tokens) > 0 {
		cond, args := farmerTextCondition(query.Tokens)
		tx = tx.Where(cond, args...)
	}

	var profileModels []*model.ProfileModel
	if err := tx.Order("created_at DESC").Limit(limit).Find(&profileModels).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrFeatureUnavailable
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search farmers")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// farmerSearchColumns are the profile columns a farmer search token may hit.
var farmerSearchColumns = []string{
	"lower(name)",
	"lower(farm_name)",
	"lower(bio)",
	"lower(city)",
	"lower(array_to_string(grow_tags, ' '))",
}

// farmerTextCondition builds the OR of every token against every searchable
// column, with LIKE wildcards in the tokens escaped.
func farmerTextCondition(tokens []string) (string, []any) {
	terms := make([]string, 0, len(tokens)*len(farmerSearchColumns))
	args := make([]any, 0, cap(terms))
	for _, token := range tokens {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(token)) + "%"
		for _, column := range farmerSearchColumns {
			terms = append(terms, column+` LIKE ? ESCAPE '\'`)
			args = append(args, pattern)
		}
	}

	return "(" + strings.Join(terms, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func profileLookupError(err error, details string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrProfileNotFound
	case isUndefinedTable(err):
		return repository.ErrFeatureUnavailable
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                  data.ID,
		Name:                data.Name,
		FarmName:            data.FarmName,
		AvatarURL:           data.AvatarURL,
		Bio:                 data.Bio,
		Role:                entity.ParseRole(data.Role),
		County:              data.County,
		City:                data.City,
		ExactAddress:        data.ExactAddress,
		Phone:               data.Phone,
		Email:               data.Email,
		GrowTags:            []string(data.GrowTags),
		ShowPhone:           data.ShowPhone,
		ShowEmail:           data.ShowEmail,
		ShowPlatformMessage: data.ShowPlatformMessage,
		ShowInMarketplace:   data.ShowInMarketplace,
		AllowReviews:        data.AllowReviews,
		IncludeInSearch:     data.IncludeInSearch,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                  data.ID,
		Name:                data.Name,
		FarmName:            data.FarmName,
		AvatarURL:           data.AvatarURL,
		Bio:                 data.Bio,
		Role:                string(data.Role),
		County:              data.County,
		City:                data.City,
		ExactAddress:        data.ExactAddress,
		Phone:               data.Phone,
		Email:               data.Email,
		GrowTags:            data.GrowTags,
		ShowPhone:           data.ShowPhone,
		ShowEmail:           data.ShowEmail,
		ShowPlatformMessage: data.ShowPlatformMessage,
		ShowInMarketplace:   data.ShowInMarketplace,
		AllowReviews:        data.AllowReviews,
		IncludeInSearch:     data.IncludeInSearch,
	}
}
