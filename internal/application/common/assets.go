// Package common holds helpers shared by the application use cases.
package common

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/infrastructure/storage"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// Object key prefixes per asset kind.
const (
	KindUserAvatar   = "avatars/users"
	KindClubAvatar   = "avatars/clubs"
	KindPostImage    = "posts"
	KindHikeImage    = "hikes"
	KindBicyclePhoto = "bicycles"
)

// ImageUpload is an uploaded image as received from a multipart form.
type ImageUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
}

// StoreImage validates an upload and stores it under a fresh key of the given kind.
func StoreImage(ctx context.Context, store services.ObjectStorage, kind string, upload ImageUpload) (string, error) {
	if upload.Body == nil || upload.Size <= 0 {
		return "", errors.NewValidationError("image is empty")
	}
	if upload.Size > storage.MaxImageSize {
		return "", errors.NewValidationError("image is too large", "maximum size is 5 MiB")
	}

	key, err := storage.ImageKey(kind, upload.ContentType)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}

	if err := store.Store(ctx, key, upload.Body, upload.Size, upload.ContentType); err != nil {
		if stderrors.Is(err, services.ErrStorageNotConfigured) {
			return "", errors.NewUnavailableError("image uploads are not available")
		}
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return key, nil
}

// DeleteAssets removes stored objects. Failures are logged and never returned.
func DeleteAssets(ctx context.Context, store services.ObjectStorage, log logger.Interface, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := store.Delete(ctx, p); err != nil {
			log.Warnw("failed to delete stored asset", "key", p, "error", err)
		}
	}
}
