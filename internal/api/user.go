package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slowfood-app/backend/internal/middleware"
	"github.com/slowfood-app/backend/internal/service"
	"github.com/slowfood-app/backend/internal/types"
)

// UserHandler exposes profiles and the follow graph.
type UserHandler struct {
	profileService *service.ProfileService
	socialService  *service.SocialService
	authService    *service.AuthService
}

func NewUserHandler(profileService *service.ProfileService, socialService *service.SocialService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		socialService:  socialService,
		authService:    authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("", h.ListUsers)
		users.PUT("/profile", h.UpdateProfile)
		users.GET("/:id", h.GetUser)
		users.POST("/:id/follow", h.Follow)
		users.POST("/:id/unfollow", h.Unfollow)
		users.GET("/:id/followers", h.Followers)
		users.GET("/:id/following", h.Following)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.profileService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.profileService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.socialService.Follow(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user followed"})
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.socialService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user unfollowed"})
}

func (h *UserHandler) Followers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	followers, err := h.socialService.Followers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

func (h *UserHandler) Following(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	following, err := h.socialService.Following(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}
