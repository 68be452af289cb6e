package articlesapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/api/query"
	"lumiere-backend/internal/domain/journal"
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
	articles *repo.ArticleRepo
	log      zerolog.Logger
}

func NewHandler(articles *repo.ArticleRepo, log zerolog.Logger) *Handler {
	return &Handler{articles: articles, log: log}
}

func (h *Handler) filterFromQuery(c *gin.Context) repo.ArticleFilter {
	return repo.ArticleFilter{
		Status:     c.Query("status"),
		AuthorID:   uintQuery(c, "authorId"),
		CategoryID: uintQuery(c, "categoryId"),
		Slugs:      query.CSV(c, "slug"),
		ListParams: query.Params(c, sortable, "created_at DESC"),
	}
}

// GET /articles
func (h *Handler) ListPublic(c *gin.Context) {
	filter := h.filterFromQuery(c)
	filter.Status = journal.StatusPublished

	articles, total, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, ListArticlesResponse{Items: articles, Total: total})
}

// GET /articles/:slug
func (h *Handler) GetPublic(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// GET /admin/articles
func (h *Handler) List(c *gin.Context) {
	articles, total, err := h.articles.List(c.Request.Context(), h.filterFromQuery(c))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, ListArticlesResponse{Items: articles, Total: total})
}

// GET /admin/articles/:slug
func (h *Handler) Get(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// POST /admin/articles
func (h *Handler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articles.Create(c.Request.Context(), repo.ArticleInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		Cover:      req.Cover,
		Status:     req.Status,
		AuthorID:   refInput(req.AuthorID),
		CategoryID: refInput(req.CategoryID),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, article)
}

// PUT /admin/articles/:slug
func (h *Handler) Update(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articles.Update(c.Request.Context(), c.Param("slug"), repo.ArticleInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		Cover:      req.Cover,
		Status:     req.Status,
		AuthorID:   refInput(req.AuthorID),
		CategoryID: refInput(req.CategoryID),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// DELETE /admin/articles/:slug
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.articles.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func uintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
