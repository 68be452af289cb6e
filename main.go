package main

import (
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"lumiere-backend/config"
	"lumiere-backend/database"
	routes "lumiere-backend/internal/app/http"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}

	var cld *cloudinary.Cloudinary
	if config.CLOUDINARY_URL != "" {
		cld, err = cloudinary.NewFromURL(config.CLOUDINARY_URL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to configure media storage")
		}
	} else {
		zlog.Warn().Msg("CLOUDINARY_URL not set, media endpoints disabled")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		DB:                db,
		Log:               zlog.Logger,
		JWTSecret:         config.JWT_SECRET,
		AdminEmail:        config.ADMIN_EMAIL,
		AdminPasswordHash: config.ADMIN_PASSWORD_HASH,
		Cloudinary:        cld,
	})

	if err := r.Run(":" + config.PORT); err != nil {
		zlog.Fatal().Err(err).Msg("server exited")
	}
}
