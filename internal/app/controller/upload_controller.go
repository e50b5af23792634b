package controller

import (
	"net/http"

	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

var allowedUploadFolders = map[string]bool{
	"brands":  true,
	"reviews": true,
	"users":   true,
}

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: s3Storage}
}

type presignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder" binding:"required"`
}

// GetPresignedURL handles POST /upload/presigned-url
func (ctrl *UploadController) GetPresignedURL(c *gin.Context) {
	var req presignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	if !allowedUploadFolders[req.Folder] {
		apperrors.RespondInvalidInput(c, "invalid upload folder")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	resp, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, req.Folder)
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
