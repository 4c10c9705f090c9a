package impl

import (
	"context"
	"log/slog"
	"strings"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/marketplace"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	farmerLimit int
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	srv := &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Marketplace != nil {
		srv.farmerLimit = params.Config.Marketplace.FarmerLimit
	}

	return srv
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyProfile returns the caller's profile. A missing row is created from
// the signup metadata with one insert-or-return-existing on the primary.
func (srv *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		profile, err = repoFactory.ProfileRepo().Ensure(ctx, entity.NewProfileFromMetadata(user.ID, user.Email, user.Metadata))
		if err != nil {
			return errors.Wrap(err, "failed to ensure profile")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return nil, domainerrors.ErrProfileNotFound.WithDetails("profiles are not available yet")
		}

		return nil, errors.Wrap(err, "failed to load own profile")
	}

	return profile, nil
}

// GetPublicProfile returns the public projection of a profile. Profiles
// hidden from the marketplace are only visible to their owner.
func (srv *profileService) GetPublicProfile(ctx context.Context, viewer *uuid.UUID, profileID uuid.UUID) (*entity.PublicProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.IsAny(err, repository.ErrProfileNotFound, repository.ErrFeatureUnavailable) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	isOwner := viewer != nil && *viewer == profile.ID
	if !profile.ShowInMarketplace && !isOwner {
		return nil, domainerrors.ErrProfileNotFound
	}

	return profile.Public(), nil
}

// UpdateProfile applies a partial update. Concurrent updates are last write wins.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + string(*input.Role))
	}
	if input.County != nil {
		if err := validateCounty(*input.County); err != nil {
			return nil, err
		}
	}

	profile, err := srv.GetMyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(profile, input)

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	setString(&profile.Name, input.Name)
	setString(&profile.FarmName, input.FarmName)
	setString(&profile.AvatarURL, input.AvatarURL)
	setString(&profile.Bio, input.Bio)
	setString(&profile.County, input.County)
	setString(&profile.City, input.City)
	setString(&profile.ExactAddress, input.ExactAddress)
	setString(&profile.Phone, input.Phone)
	setString(&profile.Email, input.Email)
	if input.Role != nil {
		profile.Role = *input.Role
	}
	if input.GrowTags != nil {
		profile.GrowTags = normalizeTags(*input.GrowTags)
	}
	setBool(&profile.ShowPhone, input.ShowPhone)
	setBool(&profile.ShowEmail, input.ShowEmail)
	setBool(&profile.ShowPlatformMessage, input.ShowPlatformMessage)
	setBool(&profile.ShowInMarketplace, input.ShowInMarketplace)
	setBool(&profile.AllowReviews, input.AllowReviews)
	setBool(&profile.IncludeInSearch, input.IncludeInSearch)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// normalizeTags lowercases, trims and de-duplicates tags, keeping first occurrence order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// SearchFarmers lists farmers that opted into search, narrowed by free text.
// An unmigrated profiles table yields an empty directory.
func (srv *profileService) SearchFarmers(ctx context.Context, input *usecase.SearchFarmersInput) ([]*entity.PublicProfile, error) {
	if err := validateCounty(input.County); err != nil {
		return nil, err
	}

	tokens := marketplace.Tokenize(input.Query)
	farmers, err := srv.profileRepo.SearchFarmers(ctx, repository.FarmerQuery{
		County: input.County,
		Tokens: tokens,
		Limit:  srv.farmerLimit,
	})
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			srv.log(ctx).Warn("Farmer directory unavailable", slog.Any("error", err))

			return []*entity.PublicProfile{}, nil
		}

		return nil, errors.Wrap(err, "failed to search farmers")
	}

	out := make([]*entity.PublicProfile, 0, len(farmers))
	for _, farmer := range farmers {
		if marketplace.MatchProfile(farmer, tokens) {
			out = append(out, farmer.Public())
		}
	}

	return out, nil
}
