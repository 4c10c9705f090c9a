package usecase

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/marketplace"

	"github.com/google/uuid"
)

// BrowseInput is a feed request: free text plus categorical filters.
type BrowseInput struct {
	Query   string
	Filters marketplace.FilterSet
}

// ListingInput carries the writable fields of a listing.
type ListingInput struct {
	Title       string
	Description string
	Type        entity.PostType
	Category    string
	Tags        []string
	Visibility  entity.Visibility
	Status      entity.PostStatus
	County      string
	City        string

	Price       *float64
	Unit        string
	Quantity    *float64
	SubProducts []entity.SubProduct

	PickupAvailable   bool
	DeliveryAvailable bool
	Images            []string
}

// ListingUsecase defines the marketplace listing operations. A nil viewer is a guest.
type ListingUsecase interface {
	Browse(ctx context.Context, viewer *uuid.UUID, input *BrowseInput) ([]*entity.Post, error)
	Get(ctx context.Context, viewer *uuid.UUID, postID uuid.UUID) (*entity.Post, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *ListingInput) (*entity.Post, error)
	Update(ctx context.Context, ownerID, postID uuid.UUID, input *ListingInput) (*entity.Post, error)
	UpdateStatus(ctx context.Context, ownerID, postID uuid.UUID, status entity.PostStatus) error
	Delete(ctx context.Context, ownerID, postID uuid.UUID) error
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error)

	Save(ctx context.Context, viewerID, postID uuid.UUID) error
	Unsave(ctx context.Context, viewerID, postID uuid.UUID) error
	ListSaved(ctx context.Context, viewerID uuid.UUID) ([]*entity.Post, error)

	// ShareQR renders a PNG QR code linking to the public listing page.
	ShareQR(ctx context.Context, viewer *uuid.UUID, postID uuid.UUID) ([]byte, error)
}
