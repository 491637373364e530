// Package storage implements object storage for uploaded images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// s3Client is the subset of the S3 API used by the storage.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage stores objects in an S3 compatible bucket.
type S3Storage struct {
	client  s3Client
	bucket  string
	baseURL string
	logger  logger.Interface
}

// New returns an S3 backed storage, or a storage that rejects every write when
// no bucket is configured.
func New(cfg config.StorageConfig, log logger.Interface) services.ObjectStorage {
	if !cfg.Enabled() {
		log.Warnw("object storage disabled, uploads will be rejected")
		return disabledStorage{}
	}
	return newS3Storage(newS3Client(cfg), cfg, log)
}

func newS3Client(cfg config.StorageConfig) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

func newS3Storage(client s3Client, cfg config.StorageConfig, log logger.Interface) *S3Storage {
	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" && cfg.Endpoint != "" {
		baseURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, baseURL: baseURL, logger: log}
}

func (s *S3Storage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("head object %s: %w", key, err)
}

func (s *S3Storage) Store(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	s.logger.Debugw("object stored", "key", key, "size", size)
	return nil
}

// Delete removes key. Deleting a missing key succeeds.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + key
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

type disabledStorage struct{}

func (disabledStorage) Exists(context.Context, string) (bool, error) {
	return false, services.ErrStorageNotConfigured
}

func (disabledStorage) Store(context.Context, string, io.Reader, int64, string) error {
	return services.ErrStorageNotConfigured
}

func (disabledStorage) Delete(context.Context, string) error { return nil }

func (disabledStorage) URL(key string) string { return key }
