// Package storage implements product image persistence on top of a
// gocloud.dev blob bucket, so the same code serves a local directory in
// development and GCS in production.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"feira/config"
	"feira/internal/domain/lifecycle"
	"feira/internal/domain/service"
	"feira/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStorage implements service.ImageStorage on a blob bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.ImageStorage.
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wires an already opened bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the image bytes under the given key and returns the public URL.
func (s *blobImageStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := writer.Write(data); err != nil {
		// Close discards the partial write; the original error matters more.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit image write")
	}

	s.logger.Debug("image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the stored object. A missing or empty key is not an error.
func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// KeyFromURL recovers the storage key from a stored public URL.
func (s *blobImageStorage) KeyFromURL(url string) string {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}

	return strings.TrimPrefix(url, prefix)
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
