package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slowfood-app/backend/internal/database"
	"github.com/slowfood-app/backend/internal/models"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestRecipe(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Title:           title,
		Ingredients:     models.JSONBStringArray{"flour", "water", "salt"},
		Cuisine:         "vegetarian",
		Instructions:    "mix and bake",
		Time:            30,
		Flavor:          "savory",
		BeveragePairing: "white wine",
		Difficulty:      "easy",
		AuthorID:        author.ID,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}
