package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "heyfarmer/internal/delivery/context"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mediaService struct {
	store    service.ImageStore
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store    service.ImageStore
	Profiles usecase.ProfileUsecase
	Logger   *slog.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		store:    params.Store,
		profiles: params.Profiles,
		logger:   params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores the image under <kind>s/<owner>/ and, for avatars,
// points the owner's profile at it.
func (srv *mediaService) UploadImage(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadImageInput) (*service.StoredImage, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown media kind: " + string(input.Kind))
	}

	prefix := string(input.Kind) + "s/" + ownerID.String()
	stored, err := srv.store.PutImage(ctx, prefix, input.Body)
	if err != nil {
		srv.log(ctx).Warn("Image upload rejected",
			slog.String("filename", input.Filename),
			slog.String("kind", string(input.Kind)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to store image")
	}
	srv.log(ctx).Info("Image uploaded", slog.String("key", stored.Key), slog.Int64("size", stored.Size))

	if input.Kind == usecase.MediaKindAvatar {
		avatarURL := stored.URL
		if _, err := srv.profiles.UpdateProfile(ctx, ownerID, &usecase.UpdateProfileInput{AvatarURL: &avatarURL}); err != nil {
			if delErr := srv.store.Delete(ctx, stored.Key); delErr != nil {
				logBestEffort(ctx, srv.log(ctx), "Failed to remove orphaned avatar", delErr, slog.String("key", stored.Key))
			}

			return nil, errors.Wrap(err, "failed to set avatar")
		}
	}

	return stored, nil
}

// Open streams a stored image.
func (srv *mediaService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	body, contentType, err := srv.store.Open(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open image")
	}

	return body, contentType, nil
}
