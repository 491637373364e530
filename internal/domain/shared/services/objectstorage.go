package services

import (
	"context"
	"errors"
	"io"
)

var ErrStorageNotConfigured = errors.New("object storage is not configured")

// ObjectStorage stores avatar and image assets by key.
type ObjectStorage interface {
	Exists(ctx context.Context, key string) (bool, error)
	Store(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of a key; empty keys map to an empty URL.
	URL(key string) string
}
