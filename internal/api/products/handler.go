package productsapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/api/query"
	"lumiere-backend/internal/domain/catalog"
	"lumiere-backend/internal/repo"
)

var sortable = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"price":     "price",
	"carat":     "carat",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type Handler struct {
	products *repo.ProductRepo
	log      zerolog.Logger
}

func NewHandler(products *repo.ProductRepo, log zerolog.Logger) *Handler {
	return &Handler{products: products, log: log}
}

func (h *Handler) filterFromQuery(c *gin.Context) repo.ProductFilter {
	return repo.ProductFilter{
		Status:      c.Query("status"),
		Featured:    query.BoolQuery(c, "featured"),
		DiamondType: c.Query("diamondType"),
		Shape:       c.Query("shape"),
		Slugs:       query.CSV(c, "slug"),
		ListParams:  query.Params(c, sortable, "created_at DESC"),
	}
}

// GET /products is the public storefront listing, published and visible only.
func (h *Handler) ListPublic(c *gin.Context) {
	filter := h.filterFromQuery(c)
	filter.Status = catalog.StatusPublished
	filter.VisibleOnly = true

	products, total, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, ListProductsResponse{Items: products, Total: total})
}

// GET /products/:slug
func (h *Handler) GetPublic(c *gin.Context) {
	product, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	if product == nil || !product.IsShow {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /admin/products
func (h *Handler) List(c *gin.Context) {
	products, total, err := h.products.List(c.Request.Context(), h.filterFromQuery(c))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, ListProductsResponse{Items: products, Total: total})
}

// GET /admin/products/:slug
func (h *Handler) Get(c *gin.Context) {
	product, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /admin/products
func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateDiamondType(req.DiamondType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateImages(req.Images); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), repo.ProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		DiamondType: req.DiamondType,
		Carat:       req.Carat,
		Shape:       req.Shape,
		Images:      req.Images,
		IsFeatured:  req.IsFeatured,
		IsShow:      req.IsShow,
		Status:      req.Status,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /admin/products/:slug
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateDiamondType(req.DiamondType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateImages(req.Images); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("slug"), repo.ProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		DiamondType: req.DiamondType,
		Carat:       req.Carat,
		Shape:       req.Shape,
		Images:      req.Images,
		IsFeatured:  req.IsFeatured,
		IsShow:      req.IsShow,
		Status:      req.Status,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /admin/products/:slug
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.products.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
