package server

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	errs "github.com/greencycle/recyclemart/errors"
	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/server/response"
)

// Allowed MIME types and max size for item images.
const (
	MaxFileSize      = 5 * 1024 * 1024 // 5 MB
	AllowedMimeTypes = "image/jpeg,image/png,image/gif"
)

// validateFile checks the file type and size
func validateFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf("file size exceeds limit of %d bytes", MaxFileSize)
	}

	mimeType := file.Header.Get("Content-Type")
	if !isValidMimeType(mimeType) {
		return fmt.Errorf("invalid file type: %s", mimeType)
	}
	return nil
}

func isValidMimeType(mimeType string) bool {
	for _, allowed := range strings.Split(AllowedMimeTypes, ",") {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

func (s *Server) handleCreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var req models.CreateUploadRequest
		if err := c.ShouldBind(&req); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		// The image is optional: without one the item becomes a media-less
		// listing.
		_, fileHeader, err := c.Request.FormFile("image")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			fileHeader = nil
		case err != nil:
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("invalid image file", http.StatusBadRequest))
			return
		default:
			if err := validateFile(fileHeader); err != nil {
				response.JSON(c, "", http.StatusBadRequest, nil, err)
				return
			}
		}

		upload, err := s.UploadService.CreateUpload(userID, &req, fileHeader)
		if err != nil {
			response.JSON(c, "failed to upload item", http.StatusInternalServerError, nil, err)
			return
		}
		response.JSON(c, "Item uploaded successfully", http.StatusCreated, upload, nil)
	}
}

func (s *Server) handleListItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads, err := s.UploadService.ListUploads(10)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "", http.StatusOK, uploads, nil)
	}
}

func (s *Server) handleGetItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		upload, err := s.UploadService.GetUpload(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "item not found", http.StatusNotFound, nil, errs.ErrNotFound)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "", http.StatusOK, upload, nil)
	}
}
