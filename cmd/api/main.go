package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Bilingual portfolio website backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiter backend; in-memory fallback if absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err.Error())
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	blogRepo := postgres.NewBlogRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	researchRepo := postgres.NewResearchRepository(dbPool)
	conferenceRepo := postgres.NewConferenceRepository(dbPool)
	achievementRepo := postgres.NewAchievementRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)
	highlightRepo := postgres.NewHighlightRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	blogUC := usecase.NewBlogUsecase(blogRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, validate)
	researchUC := usecase.NewResearchUsecase(researchRepo, validate)
	conferenceUC := usecase.NewConferenceUsecase(conferenceRepo, validate)
	achievementUC := usecase.NewAchievementUsecase(achievementRepo, validate)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo, validate)
	highlightUC := usecase.NewHighlightUsecase(highlightRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate)
	homeUC := usecase.NewHomeUsecase(profileRepo, highlightRepo, achievementRepo, conferenceRepo, researchRepo, usecase.HomeLimits{
		Highlights:   cfg.HomeHighlightLimit,
		Achievements: cfg.HomeAchievementLimit,
		Conferences:  cfg.HomeConferenceLimit,
		Research:     cfg.HomeResearchLimit,
	})

	// 7. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HomeUC:          homeUC,
		ProfileUC:       profileUC,
		BlogUC:          blogUC,
		ProjectUC:       projectUC,
		ResearchUC:      researchUC,
		ConferenceUC:    conferenceUC,
		AchievementUC:   achievementUC,
		CertificationUC: certificationUC,
		HighlightUC:     highlightUC,
		SkillUC:         skillUC,
		JWKSProvider:    jwksProvider,
		Config:          cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
