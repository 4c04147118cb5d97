package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hirenest/job-portal-api/internal/config"
	"github.com/hirenest/job-portal-api/internal/database"
	"github.com/hirenest/job-portal-api/internal/handlers"
	"github.com/hirenest/job-portal-api/internal/middleware"
	"github.com/hirenest/job-portal-api/internal/services"
	"github.com/hirenest/job-portal-api/internal/storage"
)

func main() {
	// 1. Environment & config
	_ = godotenv.Load()
	cfg := config.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	// 2. Database connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Upload storage
	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload storage")
	}

	// 4. Services
	userService := services.NewUserService(db, store)
	companyService := services.NewCompanyService(db, store)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 5. Handlers
	userHandler := handlers.NewUserHandler(userService, cfg.SecretKey, cfg.TokenTTL)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 6. Router, CORS & logging
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded assets are served back from the same process in dev
	if strings.HasPrefix(cfg.UploadBaseURL, "/") {
		r.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	// 7. Routes
	handlers.RegisterRoutes(r, cfg.SecretKey, userHandler, companyHandler, jobHandler, applicationHandler)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
