package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slowfood-app/backend/internal/models"
)

// SocialService maintains the follow graph. Each relationship is a single
// follows row, so the follower and following views of a pair can never
// drift apart: both are projections of the same edge.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// Follow creates the edge follower -> followed. Self-follows are rejected.
// Duplicates are caught by the unique (follower, followed) index, so a
// repeated or concurrent follow of the same pair fails without touching
// state.
func (s *SocialService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	var followed models.User
	if err := s.db.WithContext(ctx).First(&followed, "id = ?", followedID).Error; err != nil {
		return translateRecordError(err)
	}

	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := s.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// Unfollow removes the edge follower -> followed. Unfollowing a user who
// was never followed is a domain error, not a silent success.
func (s *SocialService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	var followed models.User
	if err := s.db.WithContext(ctx).First(&followed, "id = ?", followedID).Error; err != nil {
		return translateRecordError(err)
	}

	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// Followers lists the users following the given user, name-enriched.
func (s *SocialService) Followers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return s.listEdge(ctx, userID, "followed_id", "follower_id")
}

// Following lists the users the given user follows, name-enriched.
func (s *SocialService) Following(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return s.listEdge(ctx, userID, "follower_id", "followed_id")
}

func (s *SocialService) listEdge(ctx context.Context, userID uuid.UUID, whereCol, selectCol string) ([]models.UserSummary, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, translateRecordError(err)
	}

	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("id IN (?)", s.db.Model(&models.Follow{}).
			Select(selectCol).
			Where(whereCol+" = ?", userID)).
		Order("name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}

// IsFollowing reports whether the follower -> followed edge exists.
func (s *SocialService) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}
