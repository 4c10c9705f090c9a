package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heyfarmer/config"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/marketplace"
	"heyfarmer/internal/domain/repository"
	mockRepo "heyfarmer/internal/mocks/repository"
	mockSvc "heyfarmer/internal/mocks/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	postRepo    *mockRepo.MockPostRepository
	savedRepo   *mockRepo.MockSavedPostRepository
	profileRepo *mockRepo.MockProfileRepository
	qrService   *mockSvc.MockQRCodeService
	metrics     *mockSvc.MockMarketplaceMetrics
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	savedRepo := mockRepo.NewMockSavedPostRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	metrics := mockSvc.NewMockMarketplaceMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewListingService(ListingServiceParams{
		PostRepo:    postRepo,
		SavedRepo:   savedRepo,
		ProfileRepo: profileRepo,
		Resolver:    marketplace.NewVisibilityResolver(profileRepo, logger),
		QRService:   qrService,
		Metrics:     metrics,
		Config: &config.Config{
			Marketplace: &config.MarketplaceConfig{FeedLimit: 50},
			Site:        &config.SiteConfig{BaseURL: "https://heyfarmer.example/"},
		},
		Logger: logger,
	})

	return listingServiceFixtures{
		service:     service,
		postRepo:    postRepo,
		savedRepo:   savedRepo,
		profileRepo: profileRepo,
		qrService:   qrService,
		metrics:     metrics,
	}
}

func activePost(title string, visibility entity.Visibility) *entity.Post {
	return &entity.Post{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Title:      title,
		Type:       entity.PostTypeProduce,
		Visibility: visibility,
		Status:     entity.PostStatusActive,
	}
}

func TestListingService_Browse_ScopeByViewer(t *testing.T) {
	publicOnly := []entity.Visibility{entity.VisibilityPublic}
	withFarmers := []entity.Visibility{entity.VisibilityPublic, entity.VisibilityFarmersOnly}

	tests := []struct {
		name      string
		viewer    *uuid.UUID
		role      entity.Role
		roleErr   error
		wantScope []entity.Visibility
	}{
		{name: "guest", wantScope: publicOnly},
		{name: "consumer", viewer: ptr(uuid.New()), role: entity.RoleConsumer, wantScope: publicOnly},
		{name: "market gardener", viewer: ptr(uuid.New()), role: entity.RoleMarketGardener, wantScope: withFarmers},
		{name: "role lookup fails closed", viewer: ptr(uuid.New()), roleErr: errors.New("db down"), wantScope: publicOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ctx := context.Background()

			if tt.viewer != nil {
				fx.profileRepo.EXPECT().FindRole(ctx, *tt.viewer).Return(tt.role, tt.roleErr)
			}
			fx.postRepo.EXPECT().
				ListActive(ctx, repository.PostQuery{Visibilities: tt.wantScope, Limit: 50}).
				Return([]*entity.Post{activePost("Tomatoes", entity.VisibilityPublic)}, nil)
			fx.metrics.EXPECT().SearchPerformed(1).Return()

			posts, err := fx.service.Browse(ctx, tt.viewer, &usecase.BrowseInput{})

			require.NoError(t, err)
			assert.Len(t, posts, 1)
		})
	}
}

func TestListingService_Browse_AppliesQueryAndFilters(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	tomatoes := activePost("Heirloom Tomatoes", entity.VisibilityPublic)
	tomatoes.County = "king"
	eggs := activePost("Farm Eggs", entity.VisibilityPublic)
	eggs.County = "king"
	tractor := activePost("Used tractor tomato cart", entity.VisibilityPublic)
	tractor.Type = entity.PostTypeEquipment
	tractor.County = "king"

	fx.postRepo.EXPECT().
		ListActive(ctx, mock.AnythingOfType("repository.PostQuery")).
		Return([]*entity.Post{tomatoes, eggs, tractor}, nil)
	fx.metrics.EXPECT().SearchPerformed(1).Return()

	posts, err := fx.service.Browse(ctx, nil, &usecase.BrowseInput{
		Query:   "tomatoes",
		Filters: marketplace.FilterSet{PostType: entity.PostTypeProduce, County: "king"},
	})

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, tomatoes.ID, posts[0].ID)
}

func TestListingService_Browse_UnknownCounty(t *testing.T) {
	fx := createTestListingService(t)

	posts, err := fx.service.Browse(context.Background(), nil, &usecase.BrowseInput{
		Filters: marketplace.FilterSet{County: "atlantis"},
	})

	assert.Nil(t, posts)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListingService_Browse_FeatureUnavailable(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		ListActive(ctx, mock.AnythingOfType("repository.PostQuery")).
		Return(nil, errors.Wrap(repository.ErrFeatureUnavailable, "posts table missing"))
	fx.metrics.EXPECT().SearchPerformed(0).Return()

	posts, err := fx.service.Browse(ctx, nil, &usecase.BrowseInput{})

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListingService_Get_FarmersOnlyHiddenFromConsumer(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	viewer := uuid.New()
	post := activePost("Seed swap", entity.VisibilityFarmersOnly)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.profileRepo.EXPECT().FindRole(ctx, viewer).Return(entity.RoleConsumer, nil)

	got, err := fx.service.Get(ctx, &viewer, post.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_Get_OwnerSeesDraft(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	post := activePost("Draft carrots", entity.VisibilityFarmersOnly)
	post.Status = entity.PostStatusDraft

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	got, err := fx.service.Get(ctx, &post.UserID, post.ID)

	require.NoError(t, err)
	assert.Equal(t, post, got)
}

func TestListingService_Get_SoldHiddenFromOthers(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	post := activePost("Honey", entity.VisibilityPublic)
	post.Status = entity.PostStatusSold

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	_, err := fx.service.Get(ctx, nil, post.ID)

	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_Create(t *testing.T) {
	price := 4.5

	t.Run("farmer creates listing with defaults", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		owner := uuid.New()

		fx.profileRepo.EXPECT().FindRole(ctx, owner).Return(entity.RoleBackyardGrower, nil)
		fx.postRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(_ context.Context, post *entity.Post) {
				post.ID = uuid.New()
			}).
			Return(nil)

		post, err := fx.service.Create(ctx, owner, &usecase.ListingInput{
			Title: "  Zucchini  ",
			Type:  entity.PostTypeProduce,
			Tags:  []string{"Squash", "squash ", ""},
			Price: &price,
			Unit:  "lb",
		})

		require.NoError(t, err)
		assert.Equal(t, "Zucchini", post.Title)
		assert.Equal(t, entity.VisibilityPublic, post.Visibility)
		assert.Equal(t, entity.PostStatusActive, post.Status)
		assert.Equal(t, []string{"squash"}, post.Tags)
		assert.Equal(t, owner, post.UserID)
	})

	t.Run("consumer is rejected", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		owner := uuid.New()

		fx.profileRepo.EXPECT().FindRole(ctx, owner).Return(entity.RoleConsumer, nil)

		_, err := fx.service.Create(ctx, owner, &usecase.ListingInput{Title: "Eggs", Type: entity.PostTypeProduce})

		assert.ErrorIs(t, err, domainerrors.ErrFarmerRoleRequired)
	})

	t.Run("single price and sub-products are exclusive", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		owner := uuid.New()

		fx.profileRepo.EXPECT().FindRole(ctx, owner).Return(entity.RoleProductionFarmer, nil)

		_, err := fx.service.Create(ctx, owner, &usecase.ListingInput{
			Title:       "Peppers",
			Type:        entity.PostTypeProduce,
			Price:       &price,
			SubProducts: []entity.SubProduct{{Name: "Jalapeno"}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestListingService_Delete_NotOwner(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	post := activePost("Apples", entity.VisibilityPublic)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	err := fx.service.Delete(ctx, uuid.New(), post.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListingService_UpdateStatus(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	post := activePost("Pumpkins", entity.VisibilityPublic)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.postRepo.EXPECT().UpdateStatus(ctx, post.ID, entity.PostStatusSold).Return(nil)

	require.NoError(t, fx.service.UpdateStatus(ctx, post.UserID, post.ID, entity.PostStatusSold))

	err := fx.service.UpdateStatus(ctx, post.UserID, post.ID, entity.PostStatus("gone"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListingService_SaveAndListSaved(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	viewer := uuid.New()
	post := activePost("Garlic", entity.VisibilityPublic)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.profileRepo.EXPECT().FindRole(ctx, viewer).Return(entity.RoleConsumer, nil)
	fx.savedRepo.EXPECT().Save(ctx, viewer, post.ID).Return(nil)
	fx.savedRepo.EXPECT().
		ListSaved(ctx, viewer, []entity.Visibility{entity.VisibilityPublic}).
		Return([]*entity.Post{post}, nil)

	require.NoError(t, fx.service.Save(ctx, viewer, post.ID))

	saved, err := fx.service.ListSaved(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Post{post}, saved)
}

func TestListingService_Unsave_FeatureUnavailable(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	viewer, postID := uuid.New(), uuid.New()

	fx.savedRepo.EXPECT().Unsave(ctx, viewer, postID).Return(repository.ErrFeatureUnavailable)

	assert.NoError(t, fx.service.Unsave(ctx, viewer, postID))
}

func TestListingService_ShareQR(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	post := activePost("Plums", entity.VisibilityPublic)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.qrService.EXPECT().
		GenerateLinkQR("https://heyfarmer.example/listing/" + post.ID.String()).
		Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(ctx, nil, post.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func ptr[T any](v T) *T {
	return &v
}
