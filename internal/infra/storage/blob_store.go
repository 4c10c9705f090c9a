// Package storage keeps uploaded images in a gocloud.dev bucket. The bucket
// URL scheme picks the driver: file://, gs://, s3:// or mem://.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"heyfarmer/config"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// MediaPathPrefix is where the API serves objects when no public base URL is configured.
const MediaPathPrefix = "/api/v1/media/"

// sniffLen is how many leading bytes mimetype needs for image formats.
const sniffLen = 3072

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on stop.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket", cfg.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.PublicBaseURL, cfg.MaxImageBytes), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string, maxBytes int64) service.ImageStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxBytes:      maxBytes,
	}
}

// PutImage validates and stores one image.
func (s *blobStore) PutImage(ctx context.Context, prefix string, r io.Reader) (*service.StoredImage, error) {
	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > s.maxBytes {
		return nil, domainerrors.ErrMediaTooLarge
	}
	if len(content) == 0 {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails("empty upload")
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mtype := mimetype.Detect(head)
	if !allowedImageTypes[mtype.String()] {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails("detected " + mtype.String())
	}

	key := path.Join(strings.Trim(prefix, "/"), uuid.NewString()+mtype.Extension())

	if err := s.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{
		ContentType:  mtype.String(),
		CacheControl: "public, max-age=31536000, immutable",
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to write object %s", key)
	}

	return &service.StoredImage{
		Key:         key,
		URL:         s.publicURL(key),
		ContentType: mtype.String(),
		Size:        int64(len(content)),
	}, nil
}

// Open streams a stored object.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !validKey(key) {
		return nil, "", domainerrors.ErrNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes an object. A missing object is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobStore) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return MediaPathPrefix + key
	}

	return s.publicBaseURL + "/" + key
}

func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "..") && !strings.HasPrefix(key, "/")
}
