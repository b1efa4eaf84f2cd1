package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
)

// R2Store keeps post images in an S3-compatible bucket (Cloudflare R2).
type R2Store struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewR2Store constructs the storage adapter.
func NewR2Store(endpoint, accessKey, secretKey, bucket, region string, logger *slog.Logger) (*R2Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cleanEndpoint := sanitizeEndpoint(endpoint)
	useSSL := strings.HasPrefix(strings.ToLower(endpoint), "https")
	client, err := minio.New(cleanEndpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init r2 client: %w", err)
	}
	return &R2Store{client: client, bucket: bucket, logger: logger.With("component", "imagestore.r2")}, nil
}

func (s *R2Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	return nil
}

// Put uploads the image to the bucket.
func (s *R2Store) Put(ctx context.Context, key string, data []byte, mimeType string) (clubs.StoredImage, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return clubs.StoredImage{}, err
	}
	reader := bytes.NewReader(data)
	info, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: len(data) < 5*1024*1024,
	})
	if err != nil {
		return clubs.StoredImage{}, err
	}
	return clubs.StoredImage{
		Key:  key,
		URL:  "/api/media/" + key,
		Size: info.Size,
	}, nil
}

// Get fetches an image for reading.
func (s *R2Store) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", err
	}
	return obj, stat.ContentType, nil
}

func sanitizeEndpoint(endpoint string) string {
	clean := strings.TrimSpace(endpoint)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	return strings.TrimRight(clean, "/")
}

var _ clubs.ImageStore = (*R2Store)(nil)
