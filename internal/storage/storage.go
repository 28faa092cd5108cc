// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes one stored object as returned by List.
type ObjectInfo struct {
	Name        string
	Size        int64
	CreatedAt   time.Time
	Title       string
	Description string
}

// Provider is the interface for bucket and object operations.
type Provider interface {
	// List returns the newest-first contents of a bucket, capped at 100
	// entries. Directory markers (names ending in "/") are excluded.
	List(ctx context.Context, bucket string) ([]ObjectInfo, error)
	// Upload streams data to bucket/key. size must be the exact byte count
	// (pass -1 only if the size is genuinely unknown). meta carries
	// user metadata such as title and description. An existing object under
	// the same key is overwritten.
	Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string, meta map[string]string) error
	// Download reads the full object body and reports its content type.
	Download(ctx context.Context, bucket, key string) ([]byte, string, error)
	// Remove deletes the object identified by bucket/key.
	Remove(ctx context.Context, bucket, key string) error
	// EnsureBucket creates bucket with a public-read policy if it does not exist.
	EnsureBucket(ctx context.Context, bucket string) error
	// ListBuckets returns the names of all buckets visible to the credentials.
	ListBuckets(ctx context.Context) ([]string, error)
	// PublicURL constructs the browser-accessible URL for bucket/key.
	PublicURL(bucket, key string) string
	// SignedUploadURL issues a short-lived URL allowing a direct PUT of
	// bucket/key without routing the bytes through this process.
	SignedUploadURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
