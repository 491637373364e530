package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

// UserIDRequest is the body of the club admin membership actions.
type UserIDRequest struct {
	UserID uint `json:"user_id" binding:"required,gt=0"`
}

// currentUserID returns the authenticated user id, writing a 401 when absent.
func currentUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return 0, false
	}
	return userID, true
}

// viewerID returns the caller id on optionally authenticated routes, 0 for anonymous callers.
func viewerID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

// respondToggle answers 201 when the relation was switched on and 202 when it was switched off.
func respondToggle(c *gin.Context, result *shared.ToggleResult) {
	if result.Active {
		utils.CreatedResponse(c, result, string(result.Action))
		return
	}
	utils.AcceptedResponse(c, result, string(result.Action))
}

// imageFromForm opens the single uploaded file of a multipart field.
func imageFromForm(c *gin.Context, field string) (common.ImageUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return common.ImageUpload{}, nil, errors.NewValidationError(field + " file is required")
	}
	return openImage(fh)
}

// imagesFromForm opens every file of a multipart field, up to max.
func imagesFromForm(c *gin.Context, field string, max int) ([]common.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, func() {}, nil
	}
	headers := form.File[field]
	if len(headers) > max {
		return nil, nil, errors.NewFieldValidationError("Validation failed", map[string]string{
			field: "at most " + strconv.Itoa(max) + " images are allowed",
		})
	}

	uploads := make([]common.ImageUpload, 0, len(headers))
	closers := make([]func(), 0, len(headers))
	closeAll := func() {
		for _, fn := range closers {
			fn()
		}
	}
	for _, fh := range headers {
		upload, closeFn, err := openImage(fh)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		uploads = append(uploads, upload)
		closers = append(closers, closeFn)
	}
	return uploads, closeAll, nil
}

func openImage(fh *multipart.FileHeader) (common.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return common.ImageUpload{}, nil, errors.NewValidationError("failed to read uploaded file")
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, _ := f.Read(head)
		contentType = http.DetectContentType(head[:n])
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			_ = f.Close()
			return common.ImageUpload{}, nil, errors.NewValidationError("failed to read uploaded file")
		}
	}
	return common.ImageUpload{
		Body:        f,
		Size:        fh.Size,
		ContentType: contentType,
	}, func() { _ = f.Close() }, nil
}
