package authorsapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/api/query"
	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/media"
	"lumiere-backend/internal/repo"
)

var sortable = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"createdAt": "created_at",
}

type AuthorRequest struct {
	Name   string     `json:"name"`
	Slug   string     `json:"slug"`
	Bio    *string    `json:"bio"`
	Avatar *media.Ref `json:"avatar"`
}

type ListAuthorsResponse struct {
	Items []journal.Author `json:"items"`
	Total int64            `json:"total"`
}

type Handler struct {
	authors *repo.AuthorRepo
	log     zerolog.Logger
}

func NewHandler(authors *repo.AuthorRepo, log zerolog.Logger) *Handler {
	return &Handler{authors: authors, log: log}
}

// GET /authors and /admin/authors
func (h *Handler) List(c *gin.Context) {
	authors, total, err := h.authors.List(c.Request.Context(), query.Params(c, sortable, "name ASC"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list authors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list authors"})
		return
	}
	c.JSON(http.StatusOK, ListAuthorsResponse{Items: authors, Total: total})
}

// GET /authors/:slug
func (h *Handler) Get(c *gin.Context) {
	author, err := h.authors.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load author")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load author"})
		return
	}
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// POST /admin/authors
func (h *Handler) Create(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	author, err := h.authors.Create(c.Request.Context(), repo.AuthorInput{
		Name:   req.Name,
		Slug:   req.Slug,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create author")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create author"})
		return
	}
	c.JSON(http.StatusCreated, author)
}

// PUT /admin/authors/:slug
func (h *Handler) Update(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.authors.Update(c.Request.Context(), c.Param("slug"), repo.AuthorInput{
		Name:   req.Name,
		Slug:   req.Slug,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update author")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update author"})
		return
	}
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// DELETE /admin/authors/:slug
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.authors.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete author")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete author"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
