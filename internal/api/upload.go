package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slowfood-app/backend/internal/middleware"
	"github.com/slowfood-app/backend/internal/service"
)

// maxUploadBytes caps uploaded images at 10 MB.
const maxUploadBytes = 10 << 20

// UploadHandler accepts image uploads and stores them in S3.
type UploadHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewUploadHandler(imageService *service.ImageService, authService *service.AuthService) *UploadHandler {
	return &UploadHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", middleware.AuthMiddleware(h.authService), h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_url": url})
}
