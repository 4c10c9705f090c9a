package impl

import (
	"context"
	"log/slog"
	"strings"

	"heyfarmer/config"
	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/marketplace"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type listingService struct {
	postRepo    repository.PostRepository
	savedRepo   repository.SavedPostRepository
	profileRepo repository.ProfileRepository
	resolver    *marketplace.VisibilityResolver
	qrService   service.QRCodeService
	metrics     service.MarketplaceMetrics
	feedLimit   int
	siteURL     string
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	PostRepo    repository.PostRepository
	SavedRepo   repository.SavedPostRepository
	ProfileRepo repository.ProfileRepository
	Resolver    *marketplace.VisibilityResolver
	QRService   service.QRCodeService
	Metrics     service.MarketplaceMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		postRepo:    params.PostRepo,
		savedRepo:   params.SavedRepo,
		profileRepo: params.ProfileRepo,
		resolver:    params.Resolver,
		qrService:   params.QRService,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Marketplace != nil {
		srv.feedLimit = params.Config.Marketplace.FeedLimit
	}
	if params.Config != nil && params.Config.Site != nil {
		srv.siteURL = strings.TrimRight(params.Config.Site.BaseURL, "/")
	}

	return srv
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse fetches the listings visible to the viewer and narrows them by
// query and filters. Fetch order, newest first, is preserved.
func (srv *listingService) Browse(ctx context.Context, viewer *uuid.UUID, input *usecase.BrowseInput) ([]*entity.Post, error) {
	if input.Filters.PostType != "" && !input.Filters.PostType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown post type: " + string(input.Filters.PostType))
	}
	if err := validateCounty(input.Filters.County); err != nil {
		return nil, err
	}

	scope := srv.resolver.Resolve(ctx, viewer)

	posts, err := srv.postRepo.ListActive(ctx, repository.PostQuery{
		Visibilities: scope.Visibilities(),
		Limit:        srv.feedLimit,
	})
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			srv.log(ctx).Warn("Listing feed unavailable", slog.Any("error", err))
			srv.metrics.SearchPerformed(0)

			return []*entity.Post{}, nil
		}

		return nil, errors.Wrap(err, "failed to list active posts")
	}

	results := marketplace.Apply(posts, input.Query, input.Filters)
	srv.metrics.SearchPerformed(len(results))

	return results, nil
}

// Get reads one listing within the viewer's scope. Listings outside the
// scope, and non-active listings of other owners, are not found.
func (srv *listingService) Get(ctx context.Context, viewer *uuid.UUID, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if viewer != nil && *viewer == post.UserID {
		return post, nil
	}
	if post.Status != entity.PostStatusActive {
		return nil, domainerrors.ErrListingNotFound
	}
	if !srv.resolver.Resolve(ctx, viewer).Allows(post.Visibility) {
		return nil, domainerrors.ErrListingNotFound
	}

	return post, nil
}

func (srv *listingService) findPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.IsAny(err, repository.ErrPostNotFound, repository.ErrFeatureUnavailable) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

func (srv *listingService) findOwnedPost(ctx context.Context, ownerID, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != ownerID {
		return nil, domainerrors.ErrForbidden.WithDetails("listing belongs to another user")
	}

	return post, nil
}

// Create publishes a listing. Only farmer roles may create listings.
func (srv *listingService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.ListingInput) (*entity.Post, error) {
	role, err := srv.profileRepo.FindRole(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrFarmerRoleRequired.WithDetails("profile not set up")
		}

		return nil, errors.Wrap(err, "failed to read owner role")
	}
	if !role.IsFarmer() {
		return nil, domainerrors.ErrFarmerRoleRequired
	}

	post := &entity.Post{UserID: ownerID}
	if err := applyListingInput(post, input); err != nil {
		return nil, err
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("userID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}
	srv.log(ctx).Info("Listing created", slog.Any("postID", post.ID), slog.Any("userID", ownerID))

	return post, nil
}

// Update overwrites the listing fields. Last write wins.
func (srv *listingService) Update(ctx context.Context, ownerID, postID uuid.UUID, input *usecase.ListingInput) (*entity.Post, error) {
	post, err := srv.findOwnedPost(ctx, ownerID, postID)
	if err != nil {
		return nil, err
	}

	if err := applyListingInput(post, input); err != nil {
		return nil, err
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// UpdateStatus moves a listing between active, sold, expired and draft.
func (srv *listingService) UpdateStatus(ctx context.Context, ownerID, postID uuid.UUID, status entity.PostStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	if _, err := srv.findOwnedPost(ctx, ownerID, postID); err != nil {
		return err
	}

	if err := srv.postRepo.UpdateStatus(ctx, postID, status); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to update post status")
	}

	return nil
}

// Delete removes a listing owned by the caller.
func (srv *listingService) Delete(ctx context.Context, ownerID, postID uuid.UUID) error {
	if _, err := srv.findOwnedPost(ctx, ownerID, postID); err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}
	srv.log(ctx).Info("Listing deleted", slog.Any("postID", postID), slog.Any("userID", ownerID))

	return nil
}

// ListMine returns the caller's listings in every status.
func (srv *listingService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return []*entity.Post{}, nil
		}

		return nil, errors.Wrap(err, "failed to list own posts")
	}

	return posts, nil
}

// Save bookmarks a listing the viewer can see.
func (srv *listingService) Save(ctx context.Context, viewerID, postID uuid.UUID) error {
	if _, err := srv.Get(ctx, &viewerID, postID); err != nil {
		return err
	}

	if err := srv.savedRepo.Save(ctx, viewerID, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrListingNotFound
		}
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return domainerrors.ErrNotFound.WithDetails("saved listings are not available yet")
		}

		return errors.Wrap(err, "failed to save post")
	}

	return nil
}

// Unsave removes a bookmark. Removing a missing bookmark succeeds.
func (srv *listingService) Unsave(ctx context.Context, viewerID, postID uuid.UUID) error {
	if err := srv.savedRepo.Unsave(ctx, viewerID, postID); err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			return nil
		}

		return errors.Wrap(err, "failed to unsave post")
	}

	return nil
}

// ListSaved returns the viewer's bookmarks that are still active and visible.
func (srv *listingService) ListSaved(ctx context.Context, viewerID uuid.UUID) ([]*entity.Post, error) {
	scope := srv.resolver.Resolve(ctx, &viewerID)

	posts, err := srv.savedRepo.ListSaved(ctx, viewerID, scope.Visibilities())
	if err != nil {
		if errors.Is(err, repository.ErrFeatureUnavailable) {
			srv.log(ctx).Warn("Saved listings unavailable", slog.Any("error", err))

			return []*entity.Post{}, nil
		}

		return nil, errors.Wrap(err, "failed to list saved posts")
	}

	return posts, nil
}

// ShareQR renders the share link of a visible listing as a PNG QR code.
func (srv *listingService) ShareQR(ctx context.Context, viewer *uuid.UUID, postID uuid.UUID) ([]byte, error) {
	post, err := srv.Get(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateLinkQR(srv.siteURL + constants.PathListing + post.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render listing QR code")
	}

	return png, nil
}

// applyListingInput validates input and copies it onto post.
func applyListingInput(post *entity.Post, input *usecase.ListingInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if !input.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown post type: " + string(input.Type))
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}
	if !visibility.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown visibility: " + string(visibility))
	}

	status := input.Status
	if status == "" {
		status = entity.PostStatusActive
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	if err := validateCounty(input.County); err != nil {
		return err
	}
	if err := validatePricing(input); err != nil {
		return err
	}

	post.Title = title
	post.Description = strings.TrimSpace(input.Description)
	post.Type = input.Type
	post.Category = strings.TrimSpace(input.Category)
	post.Tags = normalizeTags(input.Tags)
	post.Visibility = visibility
	post.Status = status
	post.County = input.County
	post.City = strings.TrimSpace(input.City)
	post.Price = input.Price
	post.Unit = strings.TrimSpace(input.Unit)
	post.Quantity = input.Quantity
	post.SubProducts = input.SubProducts
	post.PickupAvailable = input.PickupAvailable
	post.DeliveryAvailable = input.DeliveryAvailable
	post.Images = input.Images

	return nil
}

// validatePricing accepts a single price/unit/quantity or a sub-product list, not both.
func validatePricing(input *usecase.ListingInput) error {
	single := input.Price != nil || input.Quantity != nil || strings.TrimSpace(input.Unit) != ""
	if single && len(input.SubProducts) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("use either a single price or sub-products")
	}
	if input.Price != nil && *input.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	for i := range input.SubProducts {
		sub := input.SubProducts[i]
		if strings.TrimSpace(sub.Name) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("sub-product name is required")
		}
		if sub.Price != nil && *sub.Price < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("sub-product price must not be negative")
		}
	}

	return nil
}
