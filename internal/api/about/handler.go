package aboutapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/render"
	"lumiere-backend/internal/repo"
	"lumiere-backend/internal/sections"
)

type AboutRequest struct {
	Title          *string             `json:"title"`
	SeoTitle       *string             `json:"seo_title"`
	SeoDescription *string             `json:"seo_description"`
	Blocks         []repo.SectionInput `json:"blocks"`
}

type Handler struct {
	settings *repo.SettingsRepo
	resolver *render.Resolver
	log      zerolog.Logger
}

func NewHandler(settings *repo.SettingsRepo, resolver *render.Resolver, log zerolog.Logger) *Handler {
	return &Handler{settings: settings, resolver: resolver, log: log}
}

// GET /about returns resolved blocks for the public site.
func (h *Handler) GetPublic(c *gin.Context) {
	about, err := h.settings.GetAbout(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load about")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about"})
		return
	}
	c.JSON(http.StatusOK, h.resolver.ResolveAbout(about))
}

// GET /admin/about returns raw blocks for the editor.
func (h *Handler) Get(c *gin.Context) {
	about, err := h.settings.GetAbout(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load about")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// PUT /admin/about
func (h *Handler) Update(c *gin.Context) {
	var req AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i, b := range req.Blocks {
		if err := sections.Validate(b.Type, b.Content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("block %d: %s", i, err)})
			return
		}
	}

	about, err := h.settings.UpdateAbout(c.Request.Context(), repo.AboutInput{
		Title:          req.Title,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		Blocks:         req.Blocks,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update about")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about"})
		return
	}
	c.JSON(http.StatusOK, about)
}
