package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"
	mockSvc "heyfarmer/internal/mocks/service"
	mockUsecase "heyfarmer/internal/mocks/usecase"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	service  usecase.MediaUsecase
	store    *mockSvc.MockImageStore
	profiles *mockUsecase.MockProfileUsecase
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	store := mockSvc.NewMockImageStore(t)
	profiles := mockUsecase.NewMockProfileUsecase(t)

	return mediaServiceFixtures{
		service: NewMediaService(MediaServiceParams{
			Store:    store,
			Profiles: profiles,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		store:    store,
		profiles: profiles,
	}
}

func TestMediaService_UploadListingImage(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	owner := uuid.New()
	body := strings.NewReader("png-bytes")
	stored := &service.StoredImage{Key: "listings/" + owner.String() + "/a.png", URL: "https://cdn.example/a.png", Size: 9}

	fx.store.EXPECT().PutImage(ctx, "listings/"+owner.String(), body).Return(stored, nil)

	got, err := fx.service.UploadImage(ctx, owner, &usecase.UploadImageInput{Kind: usecase.MediaKindListing, Filename: "a.png", Body: body})

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestMediaService_UploadAvatar_UpdatesProfile(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	owner := uuid.New()
	stored := &service.StoredImage{Key: "avatars/" + owner.String() + "/me.jpg", URL: "https://cdn.example/me.jpg"}

	fx.store.EXPECT().PutImage(ctx, "avatars/"+owner.String(), mock.Anything).Return(stored, nil)
	fx.profiles.EXPECT().
		UpdateProfile(ctx, owner, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.AvatarURL != nil && *input.AvatarURL == stored.URL
		})).
		Return(&entity.Profile{ID: owner, AvatarURL: stored.URL}, nil)

	_, err := fx.service.UploadImage(ctx, owner, &usecase.UploadImageInput{Kind: usecase.MediaKindAvatar, Body: strings.NewReader("jpg")})

	assert.NoError(t, err)
}

func TestMediaService_UploadAvatar_ProfileFailureRemovesImage(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	owner := uuid.New()
	stored := &service.StoredImage{Key: "avatars/" + owner.String() + "/me.jpg"}

	fx.store.EXPECT().PutImage(ctx, "avatars/"+owner.String(), mock.Anything).Return(stored, nil)
	fx.profiles.EXPECT().UpdateProfile(ctx, owner, mock.Anything).Return(nil, errors.New("db down"))
	fx.store.EXPECT().Delete(ctx, stored.Key).Return(nil)

	_, err := fx.service.UploadImage(ctx, owner, &usecase.UploadImageInput{Kind: usecase.MediaKindAvatar, Body: strings.NewReader("jpg")})

	assert.Error(t, err)
}

func TestMediaService_UploadImage_Rejections(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	owner := uuid.New()

	_, err := fx.service.UploadImage(ctx, owner, &usecase.UploadImageInput{Kind: "banner"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.store.EXPECT().PutImage(ctx, "listings/"+owner.String(), mock.Anything).Return(nil, domainerrors.ErrUnsupportedMedia)

	_, err = fx.service.UploadImage(ctx, owner, &usecase.UploadImageInput{Kind: usecase.MediaKindListing, Body: strings.NewReader("%PDF")})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
}

func TestMediaService_Open(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	body := io.NopCloser(strings.NewReader("img"))

	fx.store.EXPECT().Open(ctx, "listings/x.png").Return(body, "image/png", nil)

	got, contentType, err := fx.service.Open(ctx, "listings/x.png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, body, got)
}
