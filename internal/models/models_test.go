package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}, &Recipe{}))
	return db
}

func TestUserBeforeCreateDefaults(t *testing.T) {
	db := openTestDB(t)

	user := User{
		Email:        "  Alice@Example.COM ",
		PasswordHash: "hash",
		Name:         "Alice",
	}
	require.NoError(t, db.Create(&user).Error)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, DefaultProfileImage, user.ProfileImage)
	assert.Equal(t, DefaultBio, user.Bio)
}

func TestUserBeforeCreateKeepsProvidedProfile(t *testing.T) {
	db := openTestDB(t)

	user := User{
		Email:        "bob@example.com",
		PasswordHash: "hash",
		Name:         "Bob",
		ProfileImage: "https://example.com/bob.png",
		Bio:          "Pasta person.",
	}
	require.NoError(t, db.Create(&user).Error)

	assert.Equal(t, "https://example.com/bob.png", user.ProfileImage)
	assert.Equal(t, "Pasta person.", user.Bio)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail(" A@B.Com "))
	assert.Equal(t, "a@b.com", NormalizeEmail("a@b.com"))
}

func TestRecipeBeforeCreateDefaults(t *testing.T) {
	db := openTestDB(t)

	recipe := Recipe{
		Title:           "Soup",
		Ingredients:     JSONBStringArray{"water", "salt"},
		Cuisine:         "comfort",
		Instructions:    "simmer",
		Time:            30,
		Flavor:          "savory",
		BeveragePairing: "tea",
		Difficulty:      "easy",
		AuthorID:        uuid.New(),
	}
	require.NoError(t, db.Create(&recipe).Error)

	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, DefaultRecipeImage, recipe.ImageURL)

	var stored Recipe
	require.NoError(t, db.First(&stored, "id = ?", recipe.ID).Error)
	assert.Equal(t, JSONBStringArray{"water", "salt"}, stored.Ingredients)
}
