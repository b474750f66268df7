package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/xid"
	"motogarage-api/config"
)

// ErrObjectExists is returned when an upload would overwrite an existing
// object. Stored names are randomized, so hitting this means a retry of the
// same path, not a real collision.
var ErrObjectExists = errors.New("object already exists")

// ObjectStore is the blob side of the backend gateway: one call per action,
// no retries.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, objectPath string) (io.ReadCloser, error)
	Remove(ctx context.Context, objectPath string) error
}

// MinioStore implements ObjectStore on a MinIO/S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &MinioStore{
		client: client,
		bucket: cfg.StorageBucket,
	}, nil
}

// Upload writes the object with no-overwrite semantics.
func (s *MinioStore) Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.StatObject(ctx, s.bucket, objectPath, minio.StatObjectOptions{})
	if err == nil {
		return ErrObjectExists
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (s *MinioStore) Download(ctx context.Context, objectPath string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	return object, nil
}

func (s *MinioStore) Remove(ctx context.Context, objectPath string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// StoredObjectPath builds the namespaced path for a new document blob: the
// owner and motorcycle ids plus a collision-resistant name preserving the
// original file extension.
func StoredObjectPath(userID, motorcycleID, originalName string) string {
	name := xid.New().String()
	if ext := strings.TrimPrefix(path.Ext(originalName), "."); ext != "" {
		name = name + "." + ext
	}
	return userID + "/" + motorcycleID + "/" + name
}
