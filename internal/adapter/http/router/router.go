package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/reviewpulse/sentiment-api/internal/adapter/http/handler"
	"github.com/reviewpulse/sentiment-api/internal/adapter/http/middleware"
	"github.com/reviewpulse/sentiment-api/internal/adapter/repository/postgres"
	"github.com/reviewpulse/sentiment-api/internal/adapter/security"
	"github.com/reviewpulse/sentiment-api/internal/domain/service"
	infracache "github.com/reviewpulse/sentiment-api/internal/infrastructure/cache"
	"github.com/reviewpulse/sentiment-api/internal/infrastructure/config"
	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, classifier service.Classifier, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize repositories and security adapters
	userRepo := postgres.NewUserRepository(db)
	tokenManager := security.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.TokenTTL())
	hasher := security.NewBcryptHasher(0)

	var resultCache usecase.ResultCache
	if redisClient != nil {
		resultCache = infracache.NewResultCache(redisClient, cfg.Redis.ResultTTL())
	}

	// Initialize usecases
	authUC := usecase.NewAuthUsecase(userRepo, tokenManager, hasher)
	classifyUC := usecase.NewClassifyUsecase(classifier, resultCache, usecase.Limits{
		MaxTextLength: cfg.Limits.MaxTextLength,
		MaxBatchSize:  cfg.Limits.MaxBatchSize,
		MaxFileSize:   cfg.Limits.MaxFileSizeBytes(),
		Workers:       cfg.Limits.Workers,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUC)
	classifyHandler := handler.NewClassifyHandler(classifyUC, cfg.Limits.MaxFileSizeBytes())
	healthHandler := handler.NewHealthHandler(db, redisClient, classifier)

	// Readiness and metrics
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.Auth(authUC), authHandler.Me)
	}

	// API routes; classification and upload are behind the auth gate,
	// model-info and health are public
	api := router.Group("/api")
	{
		api.GET("/model-info", classifyHandler.ModelInfo)
		api.GET("/health", healthHandler.Health)

		protected := api.Group("", middleware.Auth(authUC))
		{
			protected.POST("/classify", classifyHandler.Classify)
			protected.POST("/classify-batch", classifyHandler.ClassifyBatch)
			protected.POST("/upload-file", classifyHandler.UploadFile)
		}
	}

	return router
}
