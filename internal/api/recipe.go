package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/slowfood-app/backend/internal/middleware"
	"github.com/slowfood-app/backend/internal/service"
	"github.com/slowfood-app/backend/internal/types"
)

// RecipeHandler exposes recipe CRUD, likes and the paginated listing.
type RecipeHandler struct {
	recipeService  *service.RecipeService
	commentService *service.CommentService
	authService    *service.AuthService
	createLimiter  *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, commentService *service.CommentService, authService *service.AuthService, createLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		commentService: commentService,
		authService:    authService,
		createLimiter:  createLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/random", h.RandomRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/comments", h.ListComments)
		if h.createLimiter != nil {
			recipes.POST("", auth, h.createLimiter.RateLimitMiddleware(), h.CreateRecipe)
		} else {
			recipes.POST("", auth, h.CreateRecipe)
		}
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
		recipes.POST("/:id/comments", auth, h.AddComment)
		recipes.POST("/:id/like", auth, h.LikeRecipe)
		recipes.POST("/:id/unlike", auth, h.UnlikeRecipe)
	}
}

// ListRecipes handles GET /recipes with optional filter criteria and
// 1-indexed pagination.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.RecipeFilter{
		Title:           c.Query("title"),
		Cuisine:         c.Query("cuisine"),
		Flavor:          c.Query("flavor"),
		BeveragePairing: c.Query("beverage_pairing"),
		Difficulty:      c.Query("difficulty"),
	}

	if ingredients := c.Query("ingredients"); ingredients != "" {
		filter.Ingredients = strings.Split(ingredients, ",")
	}
	if v := c.Query("gluten_free"); v != "" {
		b := v == "true"
		filter.GlutenFree = &b
	}
	if v := c.Query("lactose_free"); v != "" {
		b := v == "true"
		filter.LactoseFree = &b
	}
	if v := c.Query("time"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time"})
			return
		}
		filter.Time = t
	}
	if v := c.Query("author"); v != "" {
		authorID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author"})
			return
		}
		filter.AuthorID = authorID
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(service.DefaultPageSize)))

	result, err := h.recipeService.ListRecipes(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) RandomRecipe(c *gin.Context) {
	recipe, err := h.recipeService.RandomRecipe(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), userID, recipeID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *RecipeHandler) ListComments(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.LikeRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe liked"})
}

func (h *RecipeHandler) UnlikeRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.UnlikeRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe unliked"})
}
