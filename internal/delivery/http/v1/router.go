package v1

import (
	"net/http"
	"time"

	"talentai-backend/config"
	"talentai-backend/internal/delivery/http/middleware"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	TalentUC    domain.TalentUsecase
	RecruiterUC domain.RecruiterUsecase
	JobUC       domain.JobUsecase
	Codec       *token.Codec
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares. The auth gate runs last so rejected requests never
	// reach a handler; public paths are allow-listed inside the gate itself.
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.AuthGate(deps.Codec))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello welcome to talentAi api"})
	})

	// Swagger (public via the /docs suffix)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	api := r.Group("/api")
	NewAuthHandler(api, deps.AuthUC, loginLimiter)
	NewTalentHandler(api, deps.TalentUC)
	NewRecruiterHandler(api, deps.RecruiterUC)

	NewJobHandler(&r.RouterGroup, deps.JobUC)

	return r
}
