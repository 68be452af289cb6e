package categoriesapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/api/query"
	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/repo"
)

var sortable = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"createdAt": "created_at",
}

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ListCategoriesResponse struct {
	Items []journal.Category `json:"items"`
	Total int64              `json:"total"`
}

type Handler struct {
	categories *repo.CategoryRepo
	log        zerolog.Logger
}

func NewHandler(categories *repo.CategoryRepo, log zerolog.Logger) *Handler {
	return &Handler{categories: categories, log: log}
}

// GET /categories and /admin/categories
func (h *Handler) List(c *gin.Context) {
	categories, total, err := h.categories.List(c.Request.Context(), query.Params(c, sortable, "name ASC"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, ListCategoriesResponse{Items: categories, Total: total})
}

// GET /categories/:slug
func (h *Handler) Get(c *gin.Context) {
	category, err := h.categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// POST /admin/categories
func (h *Handler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), repo.CategoryInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// PUT /admin/categories/:slug
func (h *Handler) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("slug"), repo.CategoryInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /admin/categories/:slug
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.categories.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
