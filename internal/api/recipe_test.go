package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowfood-app/backend/internal/models"
)

func TestCreateRecipeRequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/recipes", "", testRecipeBody("Bread"))
	assert.Equal(t, 401, w.Code)
}

func TestCreateRecipeAuthorComesFromToken(t *testing.T) {
	router, db := setupTestRouter(t)
	token := registerTestUser(t, router, "Alice", "alice@example.com")

	// the body carries a bogus author; it must be ignored
	body := testRecipeBody("Bread")
	body["author_id"] = "11111111-1111-1111-1111-111111111111"

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, body)
	require.Equal(t, 201, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "alice@example.com").Error)

	var recipe models.Recipe
	require.NoError(t, db.First(&recipe, "title = ?", "Bread").Error)
	assert.Equal(t, user.ID, recipe.AuthorID)
}

func TestUpdateRecipeForbiddenForNonOwner(t *testing.T) {
	router, db := setupTestRouter(t)
	aliceToken := registerTestUser(t, router, "Alice", "alice@example.com")
	bobToken := registerTestUser(t, router, "Bob", "bob@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", aliceToken, testRecipeBody("Bread"))
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "PUT", "/api/v1/recipes/"+recipeID, bobToken, map[string]string{"title": "Stolen"})
	assert.Equal(t, 403, w.Code)

	var recipe models.Recipe
	require.NoError(t, db.First(&recipe, "id = ?", recipeID).Error)
	assert.Equal(t, "Bread", recipe.Title)

	w = doJSON(t, router, "PUT", "/api/v1/recipes/"+recipeID, aliceToken, map[string]string{"title": "Focaccia"})
	assert.Equal(t, 200, w.Code)
}

func TestUpdateMissingRecipeIs404(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerTestUser(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, "PUT", "/api/v1/recipes/6a2f4c9e-0000-4000-8000-000000000000", token, map[string]string{"title": "Nope"})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteRecipeReturns204(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerTestUser(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, testRecipeBody("Bread"))
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "DELETE", "/api/v1/recipes/"+recipeID, token, nil)
	assert.Equal(t, 204, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/recipes/"+recipeID, "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestListRecipesPaginatedOverHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerTestUser(t, router, "Alice", "alice@example.com")

	for i := 0; i < 20; i++ {
		w := doJSON(t, router, "POST", "/api/v1/recipes", token, testRecipeBody(fmt.Sprintf("Recipe %02d", i)))
		require.Equal(t, 201, w.Code)
	}

	w := doJSON(t, router, "GET", "/api/v1/recipes?page=1", "", nil)
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["recipes"], 9)
	assert.EqualValues(t, 20, body["total_items"])
	assert.EqualValues(t, 3, body["total_pages"])
	assert.EqualValues(t, 1, body["current_page"])

	w = doJSON(t, router, "GET", "/api/v1/recipes?page=3", "", nil)
	require.Equal(t, 200, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["recipes"], 2)
}

func TestListRecipesIngredientFilterOverHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerTestUser(t, router, "Alice", "alice@example.com")

	caprese := testRecipeBody("Caprese")
	w := doJSON(t, router, "POST", "/api/v1/recipes", token, caprese)
	require.Equal(t, 201, w.Code)

	gazpacho := testRecipeBody("Gazpacho")
	gazpacho["ingredients"] = []string{"tomato", "cucumber"}
	w = doJSON(t, router, "POST", "/api/v1/recipes", token, gazpacho)
	require.Equal(t, 201, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/recipes?ingredients=tomato,basil", "", nil)
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	recipes := body["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Caprese", recipes[0].(map[string]interface{})["title"])
}

func TestLikeUnlikeFlow(t *testing.T) {
	router, _ := setupTestRouter(t)
	aliceToken := registerTestUser(t, router, "Alice", "alice@example.com")
	bobToken := registerTestUser(t, router, "Bob", "bob@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", aliceToken, testRecipeBody("Bread"))
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["id"].(string)

	// like twice; membership stays a set
	w = doJSON(t, router, "POST", "/api/v1/recipes/"+recipeID+"/like", bobToken, nil)
	assert.Equal(t, 200, w.Code)
	w = doJSON(t, router, "POST", "/api/v1/recipes/"+recipeID+"/like", bobToken, nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/recipes/"+recipeID, "", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeBody(t, w)["likes"], 1)

	w = doJSON(t, router, "POST", "/api/v1/recipes/"+recipeID+"/unlike", bobToken, nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/recipes/"+recipeID, "", nil)
	require.Equal(t, 200, w.Code)
	assert.Empty(t, decodeBody(t, w)["likes"])
}

func TestCommentFlow(t *testing.T) {
	router, _ := setupTestRouter(t)
	aliceToken := registerTestUser(t, router, "Alice", "alice@example.com")
	bobToken := registerTestUser(t, router, "Bob", "bob@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", aliceToken, testRecipeBody("Bread"))
	require.Equal(t, 201, w.Code)
	recipeID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "POST", "/api/v1/recipes/"+recipeID+"/comments", bobToken, map[string]string{"content": "looks tasty"})
	require.Equal(t, 201, w.Code)
	commentID := decodeBody(t, w)["id"].(string)

	// listing is public and author-enriched
	w = doJSON(t, router, "GET", "/api/v1/recipes/"+recipeID+"/comments", "", nil)
	require.Equal(t, 200, w.Code)
	comments := decodeBody(t, w)["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].(map[string]interface{})["author_name"])

	// only the author can edit or delete
	w = doJSON(t, router, "PUT", "/api/v1/comments/"+commentID, aliceToken, map[string]string{"content": "edited"})
	assert.Equal(t, 403, w.Code)

	w = doJSON(t, router, "PUT", "/api/v1/comments/"+commentID, bobToken, map[string]string{"content": "edited"})
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/comments/"+commentID, aliceToken, nil)
	assert.Equal(t, 403, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/comments/"+commentID, bobToken, nil)
	assert.Equal(t, 204, w.Code)
}
