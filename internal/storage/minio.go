package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// listLimit caps how many entries a single List call returns.
const listLimit = 100

// MinioProvider implements Provider using a MinIO (or any S3-compatible) backend.
type MinioProvider struct {
	client     *minio.Client
	publicBase string
}

// NewMinioProvider creates a MinIO client. Buckets are not touched here;
// call EnsureBucket per bucket during bootstrap.
func NewMinioProvider(endpoint, accessKey, secretKey, publicBase string, useSSL bool) (*MinioProvider, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioProvider{
		client:     client,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// List returns up to listLimit objects from bucket, newest first.
// Directory markers are skipped.
func (p *MinioProvider) List(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	for obj := range p.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Recursive:    true,
		WithMetadata: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list bucket %q: %w", bucket, obj.Err)
		}
		if obj.Key == "" || strings.HasSuffix(obj.Key, "/") {
			continue
		}
		objects = append(objects, ObjectInfo{
			Name:        obj.Key,
			Size:        obj.Size,
			CreatedAt:   obj.LastModified,
			Title:       userMeta(obj.UserMetadata, "title"),
			Description: userMeta(obj.UserMetadata, "description"),
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})
	if len(objects) > listLimit {
		objects = objects[:listLimit]
	}
	return objects, nil
}

// Upload streams reader to bucket/key. S3 put semantics overwrite an
// existing key, which is what the metadata patch path relies on.
func (p *MinioProvider) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string, meta map[string]string) error {
	_, err := p.client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: meta,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Download reads the entire object body into memory and returns it with
// the stored content type.
func (p *MinioProvider) Download(ctx context.Context, bucket, key string) ([]byte, string, error) {
	obj, err := p.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get object %q: %w", key, err)
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("stat object %q: %w", key, err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("read object %q: %w", key, err)
	}
	return data, stat.ContentType, nil
}

// Remove deletes the object at bucket/key.
func (p *MinioProvider) Remove(ctx context.Context, bucket, key string) error {
	return p.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// EnsureBucket creates bucket with an anonymous-read policy when it is missing.
func (p *MinioProvider) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := p.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := p.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", bucket, err)
	}
	if err := p.client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return fmt.Errorf("set policy on bucket %q: %w", bucket, err)
	}
	return nil
}

// ListBuckets returns the names of all buckets visible to the credentials.
func (p *MinioProvider) ListBuckets(ctx context.Context) ([]string, error) {
	infos, err := p.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	names := make([]string, 0, len(infos))
	for _, b := range infos {
		names = append(names, b.Name)
	}
	return names, nil
}

// PublicURL returns the browser-accessible URL for bucket/key.
// For local MinIO: "http://localhost:9000/videos/1700000000-abc.mp4".
func (p *MinioProvider) PublicURL(bucket, key string) string {
	return p.publicBase + "/" + bucket + "/" + key
}

// SignedUploadURL issues a presigned PUT URL for bucket/key.
func (p *MinioProvider) SignedUploadURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := p.client.PresignedPutObject(ctx, bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("presign upload %q: %w", key, err)
	}
	return u.String(), nil
}

// userMeta looks up a user-metadata value tolerant of the S3 header
// canonicalization the client applies on list responses.
func userMeta(meta minio.StringMap, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key]; ok {
		return v
	}
	if v, ok := meta[http.CanonicalHeaderKey("X-Amz-Meta-"+key)]; ok {
		return v
	}
	return ""
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET
// on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
