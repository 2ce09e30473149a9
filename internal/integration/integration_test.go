package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowfood-app/backend/config"
	"github.com/slowfood-app/backend/internal/server"
	"github.com/slowfood-app/backend/internal/testdb"
)

// TestAPIAgainstPostgres runs the core request flow against a real
// postgres so the jsonb column type and ingredient filtering are
// exercised on the production dialect, not just sqlite.
func TestAPIAgainstPostgres(t *testing.T) {
	td := testdb.Setup(t)
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost: "127.0.0.1",
		ServerPort: "0",
		JWTSecret:  "integration-secret",
	}
	srv := server.New(cfg, td.DB, nil, nil)
	router := srv.Router()

	// register and log in
	w := postJSON(t, router, "/api/v1/auth/register", "", `{"name":"Alice","email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(t, router, "/api/v1/auth/login", "", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// create a recipe and find it through the ingredient filter
	body := `{"title":"Caprese","ingredients":["tomato","mozzarella","basil"],"cuisine":"italian","instructions":"slice and layer","time":10,"flavor":"fresh","beverage_pairing":"prosecco","difficulty":"easy"}`
	w = postJSON(t, router, "/api/v1/recipes", login.Token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req := httptest.NewRequest("GET", "/api/v1/recipes?ingredients=tomato,basil", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caprese")

	req = httptest.NewRequest("GET", "/api/v1/recipes?ingredients=tomato,anchovy", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Caprese")

	// partial ingredient names are not elements
	req = httptest.NewRequest("GET", "/api/v1/recipes?ingredients=tom", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Caprese")
}

func postJSON(t *testing.T, router *gin.Engine, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
