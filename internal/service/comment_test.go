package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentRequiresExistingRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)

	user := createTestUser(t, db, "Alice", "alice@example.com")

	_, err := svc.AddComment(context.Background(), user.ID, uuid.New(), "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddAndListComments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, alice, "Bread")

	first, err := svc.AddComment(ctx, bob.ID, recipe.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, first.AuthorID)
	assert.Equal(t, recipe.ID, first.RecipeID)

	_, err = svc.AddComment(ctx, alice.ID, recipe.ID, "thanks")
	require.NoError(t, err)

	comments, err := svc.ListComments(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first!", comments[0].Content)
	assert.Equal(t, "Bob", comments[0].AuthorName)
	assert.Equal(t, "Alice", comments[1].AuthorName)
}

func TestUpdateCommentOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, alice, "Bread")

	comment, err := svc.AddComment(ctx, bob.ID, recipe.ID, "nice")
	require.NoError(t, err)

	_, err = svc.UpdateComment(ctx, alice.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateComment(ctx, bob.ID, comment.ID, "very nice")
	require.NoError(t, err)
	assert.Equal(t, "very nice", updated.Content)
	assert.Equal(t, bob.ID, updated.AuthorID)
}

func TestUpdateCommentNotFoundBeforeForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)

	alice := createTestUser(t, db, "Alice", "alice@example.com")

	_, err := svc.UpdateComment(context.Background(), alice.ID, uuid.New(), "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	recipe := createTestRecipe(t, db, alice, "Bread")

	comment, err := svc.AddComment(ctx, bob.ID, recipe.ID, "nice")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(ctx, alice.ID, comment.ID), ErrForbidden)
	require.NoError(t, svc.DeleteComment(ctx, bob.ID, comment.ID))

	comments, err := svc.ListComments(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
