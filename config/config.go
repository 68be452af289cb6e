package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string

	CLOUDINARY_URL string
	CORS_ORIGIN    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	ADMIN_EMAIL = mustEnv("ADMIN_EMAIL")
	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")

	// Media uploads are disabled when no Cloudinary credentials are present.
	CLOUDINARY_URL = getEnv("CLOUDINARY_URL", "")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
