package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"amonarq/services/storage"
	"amonarq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Cloudinary folder for site assets.
const uploadFolder = "amonarq"

// UploadHandler exposes the image and asset upload endpoints.
type UploadHandler struct {
	StorageSvc storage.StorageService
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(svc storage.StorageService) *UploadHandler {
	return &UploadHandler{StorageSvc: svc}
}

// uploadToStorage saves the multipart file to a temp path and pushes it to
// the storage backend, returning the public URL.
func (h *UploadHandler) uploadToStorage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", err
	}
	defer os.Remove(tempFilePath)

	return h.StorageSvc.UploadImage(c, tempFilePath, uploadFolder)
}

// UploadImageHandler handles POST /api/upload/image. Expects a single
// multipart field named "image" and returns the resulting URL. Attaching
// the URL to a section is a separate follow-up call by the client; the two
// are not atomic.
func (h *UploadHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	url, err := h.uploadToStorage(c, fileHeader)
	if err != nil {
		logger.Error("Image upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// assetFields are the multipart field names accepted by the assets endpoint.
var assetFields = []string{"logo", "footerLogo", "favicon"}

// UploadAssetsHandler handles POST /api/upload/assets. Accepts any subset
// of the logo, footerLogo and favicon fields and returns a URL per field.
func (h *UploadHandler) UploadAssetsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	urls := gin.H{}
	for _, field := range assetFields {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}
		url, err := h.uploadToStorage(c, files[0])
		if err != nil {
			logger.Error("Asset upload failed", zap.String("field", field), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		urls[field] = url
	}
	c.JSON(http.StatusOK, urls)
}
