package ports

import (
	"context"
	"time"
)

// ObjectStore abstracts the content bucket: write, list and presign.
type ObjectStore interface {
	// Put writes an object, overwriting any existing one at the same key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// ListKeys returns all object keys under the prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)

	// PresignGet returns a time-limited read URL for the key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
