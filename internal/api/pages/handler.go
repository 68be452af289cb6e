package pagesapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/api/query"
	"lumiere-backend/internal/domain/content"
	"lumiere-backend/internal/render"
	"lumiere-backend/internal/repo"
)

var sortable = map[string]string{
	"title":     "title",
	"slug":      "slug",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type Handler struct {
	pages    *repo.PageRepo
	resolver *render.Resolver
	log      zerolog.Logger
}

func NewHandler(pages *repo.PageRepo, resolver *render.Resolver, log zerolog.Logger) *Handler {
	return &Handler{pages: pages, resolver: resolver, log: log}
}

// GET /pages/:slug returns the published page resolved into render-ready sections.
func (h *Handler) GetPublic(c *gin.Context) {
	page, err := h.pages.GetBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, h.resolver.ResolvePage(page))
}

// GET /admin/pages
func (h *Handler) List(c *gin.Context) {
	filter := repo.PageFilter{
		Status:     c.Query("status"),
		Slugs:      query.CSV(c, "slug"),
		ListParams: query.Params(c, sortable, "created_at DESC"),
	}

	pages, total, err := h.pages.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list pages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pages"})
		return
	}
	c.JSON(http.StatusOK, ListPagesResponse{Items: pages, Total: total})
}

// GET /admin/pages/:slug returns raw sections for the editor, drafts included.
func (h *Handler) Get(c *gin.Context) {
	page, err := h.pages.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /admin/pages
func (h *Handler) Create(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateSections(req.Sections); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pages.Create(c.Request.Context(), repo.PageInput{
		Title:          req.Title,
		Slug:           req.Slug,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		Status:         req.Status,
		Sections:       req.Sections,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}
	c.JSON(http.StatusCreated, page)
}

// PUT /admin/pages/:slug
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateSections(req.Sections); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pages.Update(c.Request.Context(), c.Param("slug"), repo.PageInput{
		Title:          req.Title,
		Slug:           req.Slug,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		Status:         req.Status,
		Sections:       req.Sections,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// DELETE /admin/pages/:slug
func (h *Handler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	if slug == content.HomeSlug {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The home page cannot be deleted"})
		return
	}

	deleted, err := h.pages.Delete(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
