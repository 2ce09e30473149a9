package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultProfileImage is assigned to new accounts until the user uploads their own.
	DefaultProfileImage = "https://slowfood-images.s3.amazonaws.com/defaults/chef.png"

	// DefaultBio fills the profile of a freshly registered user.
	DefaultBio = "Home cook figuring it out one recipe at a time."
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	ProfileImage string         `gorm:"size:512" json:"profile_image"`
	Bio          string         `gorm:"type:text" json:"bio"`
}

// BeforeCreate normalizes the email and fills profile defaults.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	if u.ProfileImage == "" {
		u.ProfileImage = DefaultProfileImage
	}
	if u.Bio == "" {
		u.Bio = DefaultBio
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address. Uniqueness is
// enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserSummary is the name/identity-enriched shape returned by follower and
// following listings.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profile_image"`
}

// Summary projects a user into its listing shape.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, ProfileImage: u.ProfileImage}
}
