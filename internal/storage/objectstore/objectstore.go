// Package objectstore keeps listing images in a MinIO bucket and hands
// back the public URL that gets persisted as the listing's image link.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gravadigital/marquee-api/internal/config"
	"github.com/gravadigital/marquee-api/internal/logger"
)

// ImageStore stores an uploaded image and returns its public URL
type ImageStore interface {
	PutImage(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error)
}

// MinioStore implements ImageStore against a MinIO (or S3-compatible) bucket
type MinioStore struct {
	client *minio.Client
	bucket string
	public string
	log    *log.Logger
}

// NewMinioStore connects to the object storage endpoint and makes sure the
// bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	log := logger.Media()

	client, err := minio.New(cfg.Media.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media.AccessKey, cfg.Media.SecretKey, ""),
		Secure: cfg.Media.UseSSL,
	})
	if err != nil {
		log.Error("Failed to create object storage client", "endpoint", cfg.Media.Endpoint, "error", err)
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Media.Bucket)
	if err != nil {
		log.Error("Failed to check bucket", "bucket", cfg.Media.Bucket, "error", err)
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Media.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Error("Failed to create bucket", "bucket", cfg.Media.Bucket, "error", err)
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("Created object storage bucket", "bucket", cfg.Media.Bucket)
	}

	scheme := "http"
	if cfg.Media.UseSSL {
		scheme = "https"
	}

	return &MinioStore{
		client: client,
		bucket: cfg.Media.Bucket,
		public: fmt.Sprintf("%s://%s/%s", scheme, cfg.Media.Endpoint, cfg.Media.Bucket),
		log:    log,
	}, nil
}

// PutImage stores the image under a unique object key and returns its URL
func (s *MinioStore) PutImage(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	key := path.Join(folder, uuid.New().String()+path.Ext(filename))

	s.log.Debug("Uploading image", "bucket", s.bucket, "key", key, "size", size)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("Failed to upload image", "key", key, "error", err)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := s.public + "/" + key
	s.log.Info("Image uploaded", "key", key, "url", url)
	return url, nil
}
