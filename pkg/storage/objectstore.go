package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/takimet-io/takimet/pkg/config"
)

// ObjectStore holds uploaded event images and company logos in a MinIO
// bucket. Database rows only carry the object key; PublicURL rehydrates a key
// into an absolute URL at read time so records stay portable across hosts.
type ObjectStore struct {
	logger    *slog.Logger
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewObjectStore(logger *slog.Logger, c config.ObjectStore) (*ObjectStore, error) {
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %v", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, c.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %v", c.Bucket, err)
	}
	if !exists {
		err := client.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %v", c.Bucket, err)
		}
	}

	return &ObjectStore{
		logger:    logger,
		client:    client,
		bucket:    c.Bucket,
		publicURL: strings.TrimSuffix(c.PublicURL, "/"),
	}, nil
}

func (s *ObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	s.logger.InfoContext(ctx, "Uploading object", "bucket", s.bucket, "key", key, "size", size)

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("error uploading object to bucket %q using key %q: %v", s.bucket, key, err)
	}
	return nil
}

func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("error deleting object from bucket %q using key %q: %v", s.bucket, key, err)
	}
	return nil
}

// PublicURL returns the externally reachable URL for a stored object key. An
// empty key yields an empty URL.
func (s *ObjectStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicURL + "/" + s.bucket + "/" + key
}
