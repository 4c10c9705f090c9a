package service

import (
	"context"
	"io"
)

// StoredImage describes an uploaded object.
type StoredImage struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ImageStore persists uploaded images and serves them back.
type ImageStore interface {
	// PutImage sniffs the content type, rejects anything that is not a
	// supported image or exceeds the size limit, and stores it under
	// prefix/<random id><ext>.
	PutImage(ctx context.Context, prefix string, r io.Reader) (*StoredImage, error)

	// Open streams a stored object and reports its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
