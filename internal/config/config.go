package config

import (
	"os"
	"time"
)

// Config holds everything the server reads from the environment.
// main.go loads .env first via godotenv, so local dev only needs a file.
type Config struct {
	Port          string
	DatabaseURL   string
	SecretKey     string
	TokenTTL      time.Duration
	UploadDir     string
	UploadBaseURL string
	CORSOrigin    string
	Env           string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobportal port=5432 sslmode=disable"),
		SecretKey:     getenv("SECRET_KEY", "devsecretkey"),
		TokenTTL:      getdur("TOKEN_TTL", time.Hour),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
		Env:           getenv("ENV", "dev"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
