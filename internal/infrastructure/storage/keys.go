package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxImageSize bounds uploaded images.
const MaxImageSize = 5 << 20

var ErrUnsupportedContentType = errors.New("unsupported image type, use jpeg, png or webp")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageKey returns a fresh object key "<kind>/<uuid><ext>" for an image upload.
func ImageKey(kind, contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}
	return kind + "/" + uuid.NewString() + ext, nil
}
