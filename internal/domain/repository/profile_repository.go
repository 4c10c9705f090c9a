package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for the id.
var ErrProfileNotFound = errors.New("profile not found")

// FarmerQuery narrows the farmer directory.
type FarmerQuery struct {
	County string
	// Tokens is an OR of lowercase substrings over name, farm name, bio,
	// city and grow tags. Empty matches every farmer.
	Tokens []string
	Limit  int
}

// ProfileRepository defines profile persistence.
type ProfileRepository interface {
	// FindByID retrieves the full profile, private fields included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByIDs retrieves several profiles keyed by id. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)

	// FindRole returns only the role of a profile.
	FindRole(ctx context.Context, id uuid.UUID) (entity.Role, error)

	// Ensure inserts the profile if no row with its id exists and returns the
	// stored row either way. It is a single atomic insert-or-return-existing.
	Ensure(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)

	// Update overwrites the mutable fields of an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// SearchFarmers lists farmer-role profiles that opted into marketplace search.
	SearchFarmers(ctx context.Context, query FarmerQuery) ([]*entity.Profile, error)
}
