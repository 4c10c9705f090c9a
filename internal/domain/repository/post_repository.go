package repository

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a listing does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostQuery is the fetch scope of the marketplace feed.
type PostQuery struct {
	// Visibilities is the closed set of visibilities the viewer may see. It must not be empty.
	Visibilities []entity.Visibility
	Limit        int
}

// PostRepository defines listing persistence.
type PostRepository interface {
	// ListActive returns active listings whose visibility is in the query set,
	// newest first, with the seller profile loaded.
	ListActive(ctx context.Context, query PostQuery) ([]*entity.Post, error)

	// FindByID retrieves a listing with its seller profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByOwner lists all listings of a user in any status, newest first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error)

	// Create persists a new listing and fills its generated fields.
	Create(ctx context.Context, post *entity.Post) error

	// Update overwrites the mutable fields of a listing. Last write wins.
	Update(ctx context.Context, post *entity.Post) error

	// UpdateStatus changes only the status of a listing.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PostStatus) error

	// Delete removes a listing.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavedPostRepository defines bookmark persistence.
type SavedPostRepository interface {
	// Save bookmarks a listing. Saving twice is not an error.
	Save(ctx context.Context, userID, postID uuid.UUID) error

	// Unsave removes a bookmark. Removing a missing bookmark is not an error.
	Unsave(ctx context.Context, userID, postID uuid.UUID) error

	// ListSaved returns bookmarked active listings within the visibility set, newest bookmark first.
	ListSaved(ctx context.Context, userID uuid.UUID, visibilities []entity.Visibility) ([]*entity.Post, error)
}
