package globalapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/domain/settings"
	"lumiere-backend/internal/repo"
)

type GlobalRequest struct {
	SiteName     *string                `json:"site_name"`
	Tagline      *string                `json:"tagline"`
	ContactEmail *string                `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string                `json:"contact_phone"`
	Address      *string                `json:"address"`
	FooterText   *string                `json:"footer_text"`
	SocialLinks  *[]settings.SocialLink `json:"social_links"`
}

type Handler struct {
	settings *repo.SettingsRepo
	log      zerolog.Logger
}

func NewHandler(settings *repo.SettingsRepo, log zerolog.Logger) *Handler {
	return &Handler{settings: settings, log: log}
}

// GET /global
func (h *Handler) Get(c *gin.Context) {
	global, err := h.settings.GetGlobal(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load global settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load global settings"})
		return
	}
	c.JSON(http.StatusOK, global)
}

// PUT /admin/global
func (h *Handler) Update(c *gin.Context) {
	var req GlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	global, err := h.settings.UpdateGlobal(c.Request.Context(), repo.GlobalInput{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		FooterText:   req.FooterText,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update global settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update global settings"})
		return
	}
	c.JSON(http.StatusOK, global)
}
