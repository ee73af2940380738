package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"recipehub-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamShaping(t *testing.T) {
	var captured url.Values
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		assert.Equal(t, "/complexSearch", r.URL.Path)
		w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.Search(context.Background(), domain.SearchRecipesRequest{
		Query:        "pasta",
		Cuisines:     "Italian",
		Diets:        "Vegetarian",
		Intolerances: "Gluten",
		Limit:        7,
		Sort:         "popularity",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", captured.Get("apiKey"))
	assert.Equal(t, "pasta", captured.Get("query"))
	assert.Equal(t, "Italian", captured.Get("cuisine"))
	assert.Equal(t, "Vegetarian", captured.Get("diet"))
	assert.Equal(t, "Gluten", captured.Get("intolerances"))
	assert.Equal(t, "7", captured.Get("number"))
	assert.Equal(t, "popularity", captured.Get("sort"))
	assert.Equal(t, "true", captured.Get("addRecipeInformation"))
	assert.Equal(t, "true", captured.Get("instructionsRequired"))
	assert.Equal(t, "true", captured.Get("fillIngredients"))
}

func TestSearchEmptyResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	results, err := c.Search(context.Background(), domain.SearchRecipesRequest{Query: "nothing"})
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestQuotaExceededMapsToUpstreamQuota(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.Search(context.Background(), domain.SearchRecipesRequest{Query: "pasta"})
	assert.ErrorIs(t, err, domain.ErrUpstreamQuota)

	_, err = c.GetRecipeInformation(context.Background(), "715538")
	assert.ErrorIs(t, err, domain.ErrUpstreamQuota)
}

func TestRateLimitedMapsToUpstreamQuota(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.Search(context.Background(), domain.SearchRecipesRequest{Query: "pasta"})
	assert.ErrorIs(t, err, domain.ErrUpstreamQuota)
}

func TestGetRecipeInformationMapsIngredients(t *testing.T) {
	invocations := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invocations++
		assert.Equal(t, "/715538/information", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("includeNutrition"))
		w.Write([]byte(`{
			"id": 715538,
			"title": "Bruschetta Style Pork & Pasta",
			"readyInMinutes": 35,
			"vegetarian": false,
			"glutenFree": false,
			"analyzedInstructions": [{"name": "", "steps": [{"number": 1, "step": "Cook the pasta."}]}],
			"extendedIngredients": [{"id": 10218, "name": "pork tenderloin", "amount": 1.5, "unit": "lb"}]
		}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	recipe, err := c.GetRecipeInformation(context.Background(), "715538")
	require.NoError(t, err)

	assert.Equal(t, 1, invocations)
	assert.Equal(t, int64(715538), recipe.ID)
	assert.Equal(t, 35, recipe.ReadyInMinutes)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "pork tenderloin", recipe.Ingredients[0].Name)
	require.Len(t, recipe.AnalyzedInstructions, 1)
	assert.Equal(t, "Cook the pasta.", recipe.AnalyzedInstructions[0].Steps[0].Step)
}

func TestGetRecipeInformationNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.GetRecipeInformation(context.Background(), "999999999")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRandomRequestShape(t *testing.T) {
	var captured url.Values
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		assert.Equal(t, "/random", r.URL.Path)
		w.Write([]byte(`{"recipes":[{"id": 42, "title": "Mystery Stew"}]}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	recipes, err := c.Random(context.Background(), 0, "vegetarian")
	require.NoError(t, err)

	// Zero falls back to the default page size.
	assert.Equal(t, "5", captured.Get("number"))
	assert.Equal(t, "vegetarian", captured.Get("tags"))
	require.Len(t, recipes, 1)
	assert.Equal(t, "Mystery Stew", recipes[0].Title)
	// Missing wire fields decode to empty, not nil.
	assert.NotNil(t, recipes[0].Ingredients)
	assert.NotNil(t, recipes[0].AnalyzedInstructions)
}

func TestServerErrorWrapsUpstreamFailed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.Search(context.Background(), domain.SearchRecipesRequest{Query: "pasta"})
	assert.ErrorIs(t, err, domain.ErrUpstreamFailed)
}
