package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPie() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Test Pie",
		"description": "A pie for testing",
		"ingredients": "2 cups flour, 1/2 cup butter",
		"steps":       []string{"Mix", "Bake"},
		"difficulty":  "Easy",
		"category":    "Dessert",
		"cookTime":    40,
	}
}

func TestCreateRecipe(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/recipes", token, testPie())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	recipe := decode(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "test-pie", recipe["slug"])
	assert.Equal(t, "cook@example.com", recipe["author"])
	assert.Equal(t, []interface{}{"2 cups flour", "1/2 cup butter"}, recipe["ingredients"])

	w = env.do(t, http.MethodGet, "/api/v1/recipes/test-pie", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["builtin"])
	assert.Equal(t, "Test Pie", body["recipe"].(map[string]interface{})["title"])
}

func TestCreateRecipeErrors(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")

	w := env.do(t, http.MethodPost, "/api/v1/recipes", token, testPie())
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, testPie())
	assert.Equal(t, http.StatusConflict, w.Code)

	pizza := testPie()
	pizza["title"] = "Pizza"
	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, pizza)
	assert.Equal(t, http.StatusConflict, w.Code)

	noSteps := testPie()
	noSteps["title"] = "Another Pie"
	noSteps["steps"] = ""
	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, noSteps)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "steps", decode(t, w)["field"])

	badImage := testPie()
	badImage["title"] = "Image Pie"
	badImage["image"] = "javascript:alert(1)"
	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, badImage)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "image", decode(t, w)["field"])

	w = env.do(t, http.MethodPost, "/api/v1/recipes", token, `{"title": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/recipes", "", testPie())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/recipes", token, nil)
	assert.EqualValues(t, 7, decode(t, w)["count"])
}

func TestListRecipes(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")

	w := env.do(t, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ugali", "mandazi", "cakes", "pizza", "beef-stew", "pancakes"}, recipeSlugs(t, decode(t, w)["recipes"]))

	w = env.do(t, http.MethodGet, "/api/v1/recipes?category=Kenyan&sort=name", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"mandazi", "ugali"}, recipeSlugs(t, decode(t, w)["recipes"]))

	w = env.do(t, http.MethodGet, "/api/v1/recipes?q=nothing-matches-this", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{}, recipeSlugs(t, decode(t, w)["recipes"]))

	w = env.do(t, http.MethodGet, "/api/v1/recipes?sort=calories", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(t, http.MethodGet, "/api/v1/recipes?difficulty=easy", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Kenyan", "Dessert", "Italian", "Main Course", "Breakfast"}, decode(t, w)["categories"])
}

func TestGetRecipeScaled(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")

	w := env.do(t, http.MethodGet, "/api/v1/recipes/ugali?multiplier=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["builtin"])
	assert.EqualValues(t, 2, body["multiplier"])
	ingredients := body["recipe"].(map[string]interface{})["ingredients"].([]interface{})
	assert.Equal(t, "4 cups maize flour", ingredients[0])

	w = env.do(t, http.MethodGet, "/api/v1/recipes/ugali?multiplier=-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", token, testPie()).Code)

	w := env.do(t, http.MethodPut, "/api/v1/recipes/test-pie", token, map[string]interface{}{"title": "Better Pie", "servings": 8})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	recipe := decode(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "test-pie", recipe["slug"])
	assert.Equal(t, "Better Pie", recipe["title"])
	assert.EqualValues(t, 8, recipe["servings"])

	w = env.do(t, http.MethodPut, "/api/v1/recipes/ugali", token, map[string]interface{}{"title": "Mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/recipes/missing", token, map[string]interface{}{"title": "Mine"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	env := setupTestRouter(t)
	token := env.signIn(t, "cook@example.com")
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", token, testPie()).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/recipes/test-pie/favorite", token, nil).Code)

	w := env.do(t, http.MethodDelete, "/api/v1/recipes/ugali", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/recipes/test-pie", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["deleted"])

	w = env.do(t, http.MethodDelete, "/api/v1/recipes/test-pie", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["deleted"])

	w = env.do(t, http.MethodGet, "/api/v1/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["favorites"])
}

func TestUsersDoNotShareRecipes(t *testing.T) {
	env := setupTestRouter(t)
	alice := env.signIn(t, "alice@example.com")
	bob := env.signIn(t, "bob@example.com")

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", alice, testPie()).Code)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/test-pie", bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodPost, "/api/v1/recipes", bob, testPie())
	assert.Equal(t, http.StatusCreated, w.Code)
}
