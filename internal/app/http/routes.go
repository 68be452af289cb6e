package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	aboutapi "lumiere-backend/internal/api/about"
	articlesapi "lumiere-backend/internal/api/articles"
	authapi "lumiere-backend/internal/api/auth"
	authorsapi "lumiere-backend/internal/api/authors"
	categoriesapi "lumiere-backend/internal/api/categories"
	globalapi "lumiere-backend/internal/api/global"
	mediaapi "lumiere-backend/internal/api/media"
	pagesapi "lumiere-backend/internal/api/pages"
	productsapi "lumiere-backend/internal/api/products"
	sectionsapi "lumiere-backend/internal/api/sections"
	"lumiere-backend/internal/app/http/middleware"
	"lumiere-backend/internal/editor"
	"lumiere-backend/internal/render"
	"lumiere-backend/internal/repo"
)

type Deps struct {
	DB         *gorm.DB
	Log        zerolog.Logger
	JWTSecret  string
	AdminEmail string
	// bcrypt hash of the admin password
	AdminPasswordHash string
	// nil disables the media endpoints
	Cloudinary *cloudinary.Cloudinary
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	resolver := render.New(d.Log)
	sectionEditor := editor.New(d.Log)

	pages := pagesapi.NewHandler(repo.NewPageRepo(d.DB), resolver, d.Log)
	products := productsapi.NewHandler(repo.NewProductRepo(d.DB), d.Log)
	articles := articlesapi.NewHandler(repo.NewArticleRepo(d.DB), d.Log)
	authors := authorsapi.NewHandler(repo.NewAuthorRepo(d.DB), d.Log)
	categories := categoriesapi.NewHandler(repo.NewCategoryRepo(d.DB), d.Log)

	settingsRepo := repo.NewSettingsRepo(d.DB)
	global := globalapi.NewHandler(settingsRepo, d.Log)
	about := aboutapi.NewHandler(settingsRepo, resolver, d.Log)

	sectionForms := sectionsapi.NewHandler(sectionEditor, d.Log)
	mediaHandler := mediaapi.NewHandler(d.Cloudinary, d.Log)
	auth := authapi.NewHandler(d.AdminEmail, d.AdminPasswordHash, d.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public storefront: published content only.
	r.GET("/pages/:slug", pages.GetPublic)
	r.GET("/products", products.ListPublic)
	r.GET("/products/:slug", products.GetPublic)
	r.GET("/articles", articles.ListPublic)
	r.GET("/articles/:slug", articles.GetPublic)
	r.GET("/authors", authors.List)
	r.GET("/authors/:slug", authors.Get)
	r.GET("/categories", categories.List)
	r.GET("/categories/:slug", categories.Get)
	r.GET("/global", global.Get)
	r.GET("/about", about.GetPublic)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/admin/login", auth.Login)

	// Admin dashboard: drafts visible, full CRUD.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(d.JWTSecret), middleware.RequireRole("admin"))

	admin.GET("/pages", pages.List)
	admin.GET("/pages/:slug", pages.Get)
	admin.POST("/pages", pages.Create)
	admin.PUT("/pages/:slug", pages.Update)
	admin.DELETE("/pages/:slug", pages.Delete)

	admin.GET("/products", products.List)
	admin.GET("/products/:slug", products.Get)
	admin.POST("/products", products.Create)
	admin.PUT("/products/:slug", products.Update)
	admin.DELETE("/products/:slug", products.Delete)

	admin.GET("/articles", articles.List)
	admin.GET("/articles/:slug", articles.Get)
	admin.POST("/articles", articles.Create)
	admin.PUT("/articles/:slug", articles.Update)
	admin.DELETE("/articles/:slug", articles.Delete)

	admin.GET("/authors", authors.List)
	admin.POST("/authors", authors.Create)
	admin.PUT("/authors/:slug", authors.Update)
	admin.DELETE("/authors/:slug", authors.Delete)

	admin.GET("/categories", categories.List)
	admin.POST("/categories", categories.Create)
	admin.PUT("/categories/:slug", categories.Update)
	admin.DELETE("/categories/:slug", categories.Delete)

	admin.GET("/global", global.Get)
	admin.PUT("/global", global.Update)

	admin.GET("/about", about.Get)
	admin.PUT("/about", about.Update)

	admin.GET("/sections/types", sectionForms.ListTypes)
	admin.GET("/sections/new", sectionForms.NewContent)
	admin.POST("/sections/form", sectionForms.BuildForm)
	admin.POST("/sections/edit", sectionForms.Edit)

	admin.POST("/media", mediaHandler.Upload)
	admin.DELETE("/media/*publicId", mediaHandler.Destroy)
}
