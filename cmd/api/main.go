package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentai-backend/config"
	_ "talentai-backend/docs" // Important for Swagger
	v1 "talentai-backend/internal/delivery/http/v1"
	"talentai-backend/internal/repository/postgres"
	"talentai-backend/internal/usecase"
	"talentai-backend/pkg/database"
	"talentai-backend/pkg/logger"
	"talentai-backend/pkg/redis"
	"talentai-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           TalentAI API
// @version         1.0
// @description     Backend for the TalentAI talent/recruiter matching platform.
// @host            localhost:8000
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
	logger.Log.Info("Starting talentai backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiter falls back to memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	talentRepo := postgres.NewTalentRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	assignmentRepo := postgres.NewAssignmentRepository(dbPool)

	// 6. Setup Token Codec and UseCases
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTLMinutes)
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(talentRepo, recruiterRepo, codec, validate)
	talentUC := usecase.NewTalentUsecase(talentRepo)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, talentRepo, assignmentRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		TalentUC:    talentUC,
		RecruiterUC: recruiterUC,
		JobUC:       jobUC,
		Codec:       codec,
		Config:      cfg,
	})

	// 8. Start Server
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
