package mediaapi

import (
	"net/http"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/domain/media"
)

const uploadFolder = "lumiere"

type Handler struct {
	cld *cloudinary.Cloudinary
	log zerolog.Logger
}

// NewHandler accepts a nil client; media endpoints then answer 503 so the rest
// of the admin keeps working without Cloudinary credentials.
func NewHandler(cld *cloudinary.Cloudinary, log zerolog.Logger) *Handler {
	return &Handler{cld: cld, log: log}
}

func (h *Handler) available(c *gin.Context) bool {
	if h.cld == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return false
	}
	return true
}

// POST /admin/media takes a multipart upload and returns the asset handle.
func (h *Handler) Upload(c *gin.Context) {
	if !h.available(c) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	publicID := uuid.NewString()
	if base := strings.TrimSuffix(fileHeader.Filename, path.Ext(fileHeader.Filename)); base != "" {
		publicID = base + "-" + publicID[:8]
	}

	result, err := h.cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   uploadFolder,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("media upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, media.Ref{
		URL:          result.SecureURL,
		PublicID:     result.PublicID,
		Width:        result.Width,
		Height:       result.Height,
		Format:       result.Format,
		ResourceType: result.ResourceType,
	})
}

// DELETE /admin/media/*publicId
func (h *Handler) Destroy(c *gin.Context) {
	if !h.available(c) {
		return
	}

	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	result, err := h.cld.Upload.Destroy(c.Request.Context(), uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		h.log.Error().Err(err).Msg("media destroy failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Destroy failed"})
		return
	}
	if result.Result != "ok" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
