package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slowfood-app/backend/internal/middleware"
	"github.com/slowfood-app/backend/internal/service"
)

// AssistantHandler proxies cooking questions to the generative-text API.
type AssistantHandler struct {
	assistantService *service.AssistantService
	authService      *service.AuthService
	queryLimiter     *middleware.RateLimiter
}

func NewAssistantHandler(assistantService *service.AssistantService, authService *service.AuthService, queryLimiter *middleware.RateLimiter) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		authService:      authService,
		queryLimiter:     queryLimiter,
	}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/assistant")
	assistant.Use(middleware.AuthMiddleware(h.authService))
	if h.queryLimiter != nil {
		assistant.Use(h.queryLimiter.RateLimitMiddleware())
	}
	{
		assistant.POST("/query", h.Query)
	}
}

func (h *AssistantHandler) Query(c *gin.Context) {
	var req struct {
		Message string                `json:"message" binding:"required"`
		History []service.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.assistantService.Query(c.Request.Context(), req.Message, req.History)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process assistant query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": answer})
}
