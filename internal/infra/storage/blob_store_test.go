package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestBlobStore_PutAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "https://cdn.example/", 1<<20)
	content := pngBytes(t)

	stored, err := store.PutImage(context.Background(), "/listings/owner-1/", bytes.NewReader(content))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Key, "listings/owner-1/"))
	assert.True(t, strings.HasSuffix(stored.Key, ".png"))
	assert.Equal(t, "https://cdn.example/"+stored.Key, stored.URL)
	assert.Equal(t, "image/png", stored.ContentType)
	assert.Equal(t, int64(len(content)), stored.Size)

	reader, contentType, err := store.Open(context.Background(), stored.Key)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(context.Background(), stored.Key))
	_, _, err = store.Open(context.Background(), stored.Key)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlobStore_Rejections(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "", 64)

	_, err := store.PutImage(context.Background(), "avatars/u", strings.NewReader("plain text is not an image"))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)

	_, err = store.PutImage(context.Background(), "avatars/u", bytes.NewReader(make([]byte, 65)))
	assert.ErrorIs(t, err, domainerrors.ErrMediaTooLarge)

	_, err = store.PutImage(context.Background(), "avatars/u", bytes.NewReader(nil))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)

	_, _, err = store.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlobStore_MediaPathWhenNoPublicBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "", 1<<20)

	stored, err := store.PutImage(context.Background(), "avatars/u", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, MediaPathPrefix+stored.Key, stored.URL)
}
