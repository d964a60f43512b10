package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) *blobImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithBucket(bucket, "http://localhost:8080/storage/productimages/", logger).(*blobImageStorage)
}

func TestBlobImageStorage_UploadBuildsPublicURL(t *testing.T) {
	storage := newMemStorage(t)
	ctx := context.Background()

	url, err := storage.Upload(ctx, "abc123.png", []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/storage/productimages/abc123.png", url)

	data, err := storage.bucket.ReadAll(ctx, "abc123.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
}

func TestBlobImageStorage_DeleteRemovesObject(t *testing.T) {
	storage := newMemStorage(t)
	ctx := context.Background()

	_, err := storage.Upload(ctx, "to-remove.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "to-remove.jpg"))

	exists, err := storage.bucket.Exists(ctx, "to-remove.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStorage_DeleteTolerantOfMissing(t *testing.T) {
	storage := newMemStorage(t)
	ctx := context.Background()

	assert.NoError(t, storage.Delete(ctx, ""))
	assert.NoError(t, storage.Delete(ctx, "never-uploaded.png"))
}

func TestBlobImageStorage_KeyFromURL(t *testing.T) {
	storage := newMemStorage(t)

	assert.Equal(t, "abc.png", storage.KeyFromURL("http://localhost:8080/storage/productimages/abc.png"))
	assert.Empty(t, storage.KeyFromURL("https://elsewhere.example.com/abc.png"))
	assert.Empty(t, storage.KeyFromURL(""))
}
