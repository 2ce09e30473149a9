package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/slowfood-app/backend/config"
	"github.com/slowfood-app/backend/internal/middleware"
	"github.com/slowfood-app/backend/internal/service"
)

// SetupAPI wires services and handlers onto the router. The redis client
// and S3 config may be nil; the dependent features are then disabled
// rather than failing startup.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config, jwtSecret string) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(db, jwtSecret)
		profileService := service.NewProfileService(db)
		recipeService := service.NewRecipeService(db)
		commentService := service.NewCommentService(db)
		socialService := service.NewSocialService(db)

		var createLimiter, assistantLimiter *middleware.RateLimiter
		if redisClient != nil {
			createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
			assistantLimiter = middleware.NewAssistantRateLimiter(redisClient)
		}

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		recipeHandler := NewRecipeHandler(recipeService, commentService, authService, createLimiter)
		commentHandler := NewCommentHandler(commentService, authService)
		userHandler := NewUserHandler(profileService, socialService, authService)

		// Register routes
		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		commentHandler.RegisterRoutes(v1)
		userHandler.RegisterRoutes(v1)

		if s3Config != nil {
			uploadHandler := NewUploadHandler(service.NewImageService(s3Config), authService)
			uploadHandler.RegisterRoutes(v1)
		}

		if assistantService, err := service.NewAssistantService(); err != nil {
			log.Printf("Assistant service disabled: %v", err)
		} else {
			assistantHandler := NewAssistantHandler(assistantService, authService, assistantLimiter)
			assistantHandler.RegisterRoutes(v1)
		}
	}
}
