package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
	"github.com/hcanhquan/royalvietnam-backend/internal/storage"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: storage}
}

type UploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// GenerateUploadURL issues a pre-signed URL for uploading a signed PDF
// POST /api/objects/upload
func (ctrl *UploadController) GenerateUploadURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body tùy chọn, mặc định là tệp PDF.
		req = UploadURLRequest{}
	}
	if req.Filename == "" {
		req.Filename = "document.pdf"
	}
	if req.ContentType == "" {
		req.ContentType = "application/pdf"
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, []string{"application/pdf"}); err != nil {
		errors.BadRequest(c, errors.UploadInvalidFileType, "Chỉ chấp nhận tệp PDF")
		return
	}

	response, err := ctrl.storage.GenerateDocumentUploadURL(req.Filename, req.ContentType)
	if err != nil {
		log.Error("Failed to generate upload URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		errors.RespondWithError(c, http.StatusInternalServerError, errors.UploadFailed, "Không thể tạo đường dẫn tải lên")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadURL": response.UploadURL,
		"fileURL":   response.FileURL,
		"key":       response.Key,
	})
}
