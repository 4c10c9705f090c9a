package usecase

import (
	"context"
	"io"

	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
)

// MediaKind selects the folder and side effects of an upload.
type MediaKind string

const (
	MediaKindListing MediaKind = "listing"
	MediaKindAvatar  MediaKind = "avatar"
)

// IsValid checks if the MediaKind is a valid value.
func (k MediaKind) IsValid() bool {
	return k == MediaKindListing || k == MediaKindAvatar
}

// UploadImageInput is one image upload.
type UploadImageInput struct {
	Kind     MediaKind
	Filename string
	Body     io.Reader
}

// MediaUsecase stores and serves uploaded images.
type MediaUsecase interface {
	// UploadImage stores the image under <kind>s/<owner>/. An avatar upload
	// also becomes the owner's profile picture.
	UploadImage(ctx context.Context, ownerID uuid.UUID, input *UploadImageInput) (*service.StoredImage, error)

	// Open streams a stored image and reports its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
