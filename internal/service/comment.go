package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slowfood-app/backend/internal/models"
)

// CommentDetail enriches a comment with its author's display name.
type CommentDetail struct {
	models.Comment
	AuthorName string `json:"author_name"`
}

// CommentService owns comment creation, listing and guarded mutation.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// AddComment creates a comment on a recipe. The recipe must exist; the
// author is the acting user.
func (s *CommentService) AddComment(ctx context.Context, authorID, recipeID uuid.UUID, content string) (*models.Comment, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, translateRecordError(err)
	}

	comment := models.Comment{
		Content:  content,
		AuthorID: authorID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a recipe's comments oldest first, author-enriched.
func (s *CommentService) ListComments(ctx context.Context, recipeID uuid.UUID) ([]CommentDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, translateRecordError(err)
	}

	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	details := make([]CommentDetail, 0, len(comments))
	for _, c := range comments {
		detail := CommentDetail{Comment: c}
		var author models.User
		if err := s.db.WithContext(ctx).First(&author, "id = ?", c.AuthorID).Error; err == nil {
			detail.AuthorName = author.Name
		}
		details = append(details, detail)
	}
	return details, nil
}

// UpdateComment edits a comment's content after the ownership check.
func (s *CommentService) UpdateComment(ctx context.Context, actingUser, id uuid.UUID, content string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, translateRecordError(err)
	}
	if err := authorizeOwner(actingUser, &comment); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment after the ownership check.
func (s *CommentService) DeleteComment(ctx context.Context, actingUser, id uuid.UUID) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return translateRecordError(err)
	}
	if err := authorizeOwner(actingUser, &comment); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&comment).Error
}
