package service

import "context"

// ImageStorage defines the interface for product image blobs. The catalog
// stores only the public URL on the product row; the binary lives in a
// bucket keyed by an upload-time-derived name.
type ImageStorage interface {
	// Upload writes the image bytes under the given key and returns the
	// public URL to store on the product row.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the stored object. A missing or empty key is not an
	// error: products whose image upload failed have none to remove.
	Delete(ctx context.Context, key string) error

	// KeyFromURL recovers the storage key from a stored public URL. Returns
	// an empty key for URLs that do not belong to the bucket.
	KeyFromURL(url string) string
}
