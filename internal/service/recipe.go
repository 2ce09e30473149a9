package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slowfood-app/backend/internal/models"
	"github.com/slowfood-app/backend/internal/types"
)

// DefaultPageSize is used when a listing request does not specify one.
const DefaultPageSize = 9

// RecipeFilter is an optional conjunction of listing criteria. Zero-valued
// fields impose no constraint.
type RecipeFilter struct {
	Title           string
	Ingredients     []string
	Cuisine         string
	GlutenFree      *bool
	LactoseFree     *bool
	Time            int
	Flavor          string
	BeveragePairing string
	Difficulty      string
	AuthorID        uuid.UUID
}

// RecipePage is one page of filtered results.
type RecipePage struct {
	Recipes     []models.Recipe `json:"recipes"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	TotalItems  int64           `json:"total_items"`
}

// RecipeDetail enriches a recipe with its author's display name, like
// count and comments.
type RecipeDetail struct {
	models.Recipe
	AuthorName string           `json:"author_name"`
	Likes      []uuid.UUID      `json:"likes"`
	Comments   []models.Comment `json:"comments"`
}

// RecipeService owns recipe content: creation, retrieval, guarded
// mutation, likes and the paginated filter queries.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe stores a new recipe. The author is always the acting user;
// any author supplied by the caller has already been discarded at the
// request-binding boundary.
func (s *RecipeService) CreateRecipe(ctx context.Context, authorID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:           req.Title,
		Ingredients:     models.JSONBStringArray(req.Ingredients),
		Cuisine:         req.Cuisine,
		GlutenFree:      req.GlutenFree,
		LactoseFree:     req.LactoseFree,
		Instructions:    req.Instructions,
		Time:            req.Time,
		Flavor:          req.Flavor,
		BeveragePairing: req.BeveragePairing,
		Difficulty:      req.Difficulty,
		ImageURL:        req.ImageURL,
		AuthorID:        authorID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves a recipe with its author name, likes and comments.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translateRecordError(err)
	}

	detail := RecipeDetail{Recipe: recipe}

	var author models.User
	if err := s.db.WithContext(ctx).First(&author, "id = ?", recipe.AuthorID).Error; err == nil {
		detail.AuthorName = author.Name
	}

	var likes []models.RecipeLike
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipe.ID).Find(&likes).Error; err != nil {
		return nil, err
	}
	detail.Likes = make([]uuid.UUID, 0, len(likes))
	for _, l := range likes {
		detail.Likes = append(detail.Likes, l.UserID)
	}

	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipe.ID).
		Order("created_at ASC").
		Find(&detail.Comments).Error; err != nil {
		return nil, err
	}

	return &detail, nil
}

// ListRecipes returns one page of recipes matching the filter, newest
// first. The total count is taken on the filtered query before the page
// window is applied, so filtering and paging order cannot disagree.
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter, page, pageSize int) (*RecipePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Session makes the filtered query reusable for both the count and
	// the page fetch.
	query := s.applyFilter(s.db.WithContext(ctx).Model(&models.Recipe{}), filter).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return &RecipePage{
		Recipes:     recipes,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		TotalItems:  total,
	}, nil
}

// applyFilter builds the conjunction of the requested criteria. Each
// requested ingredient contributes its own predicate, so a recipe must
// contain all of them to match. Ingredients match whole list elements:
// filtering on "milk" does not match a recipe whose only milk-like
// ingredient is "coconut milk".
func (s *RecipeService) applyFilter(query *gorm.DB, filter RecipeFilter) *gorm.DB {
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	for _, ing := range filter.Ingredients {
		name := strings.ToLower(strings.TrimSpace(ing))
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where(
				"EXISTS (SELECT 1 FROM jsonb_array_elements_text(ingredients) AS ing(value) WHERE LOWER(ing.value) = ?)",
				name,
			)
		} else {
			query = query.Where(
				"EXISTS (SELECT 1 FROM json_each(ingredients) WHERE LOWER(json_each.value) = ?)",
				name,
			)
		}
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.GlutenFree != nil {
		query = query.Where("gluten_free = ?", *filter.GlutenFree)
	}
	if filter.LactoseFree != nil {
		query = query.Where("lactose_free = ?", *filter.LactoseFree)
	}
	if filter.Time > 0 {
		query = query.Where(`"time" = ?`, filter.Time)
	}
	if filter.Flavor != "" {
		query = query.Where("flavor = ?", filter.Flavor)
	}
	if filter.BeveragePairing != "" {
		query = query.Where("beverage_pairing = ?", filter.BeveragePairing)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.AuthorID != uuid.Nil {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	return query
}

// RandomRecipe picks one recipe at random.
func (s *RecipeService) RandomRecipe(ctx context.Context) (*models.Recipe, error) {
	order := "RANDOM()"
	if s.db.Dialector.Name() == "mysql" {
		order = "RAND()"
	}
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Order(order).First(&recipe).Error; err != nil {
		return nil, translateRecordError(err)
	}
	return &recipe, nil
}

// UpdateRecipe applies the supplied fields after the ownership check. The
// author is never part of the update set, so it cannot change even when a
// request body carries one.
func (s *RecipeService) UpdateRecipe(ctx context.Context, actingUser, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translateRecordError(err)
	}
	if err := authorizeOwner(actingUser, &recipe); err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.JSONBStringArray(req.Ingredients)
	}
	if req.Cuisine != nil {
		recipe.Cuisine = *req.Cuisine
	}
	if req.GlutenFree != nil {
		recipe.GlutenFree = *req.GlutenFree
	}
	if req.LactoseFree != nil {
		recipe.LactoseFree = *req.LactoseFree
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Time != nil {
		recipe.Time = *req.Time
	}
	if req.Flavor != nil {
		recipe.Flavor = *req.Flavor
	}
	if req.BeveragePairing != nil {
		recipe.BeveragePairing = *req.BeveragePairing
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe after the ownership check. Comments on the
// deleted recipe are intentionally left in place; clients resolve them
// through the recipe and orphans are invisible to the API surface.
func (s *RecipeService) DeleteRecipe(ctx context.Context, actingUser, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return translateRecordError(err)
	}
	if err := authorizeOwner(actingUser, &recipe); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// LikeRecipe adds the user to the recipe's likes. Liking an already liked
// recipe is a no-op; the user appears at most once.
func (s *RecipeService) LikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return translateRecordError(err)
	}

	var existing models.RecipeLike
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	like := models.RecipeLike{RecipeID: recipeID, UserID: userID}
	return s.db.WithContext(ctx).Create(&like).Error
}

// UnlikeRecipe removes the user from the recipe's likes. Removing an
// absent like is a no-op.
func (s *RecipeService) UnlikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return translateRecordError(err)
	}
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.RecipeLike{}).Error
}
