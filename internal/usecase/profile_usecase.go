package usecase

import (
	"context"

	"heyfarmer/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput is a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name         *string      `json:"name,omitempty"`
	FarmName     *string      `json:"farm_name,omitempty"`
	AvatarURL    *string      `json:"avatar_url,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Role         *entity.Role `json:"role,omitempty"`
	County       *string      `json:"county,omitempty"`
	City         *string      `json:"city,omitempty"`
	ExactAddress *string      `json:"exact_address,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Email        *string      `json:"email,omitempty"`
	GrowTags     *[]string    `json:"grow_tags,omitempty"`

	ShowPhone           *bool `json:"show_phone,omitempty"`
	ShowEmail           *bool `json:"show_email,omitempty"`
	ShowPlatformMessage *bool `json:"show_platform_message,omitempty"`
	ShowInMarketplace   *bool `json:"show_in_marketplace,omitempty"`
	AllowReviews        *bool `json:"allow_reviews,omitempty"`
	IncludeInSearch     *bool `json:"include_in_search,omitempty"`
}

// SearchFarmersInput narrows the farmer directory.
type SearchFarmersInput struct {
	Query  string
	County string
}

// ProfileUsecase defines the profile operations.
type ProfileUsecase interface {
	// GetMyProfile returns the caller's full profile, creating it from the
	// signup metadata on first access.
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	GetPublicProfile(ctx context.Context, viewer *uuid.UUID, profileID uuid.UUID) (*entity.PublicProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
	SearchFarmers(ctx context.Context, input *SearchFarmersInput) ([]*entity.PublicProfile, error)
}
