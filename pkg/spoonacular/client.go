package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recipehub-backend/domain"
)

const DefaultBaseURL = "https://api.spoonacular.com/recipes"

type (
	// Client is the boundary to the external recipe API. The service layer
	// depends on this interface so tests can substitute a recording stub.
	Client interface {
		GetRecipeInformation(ctx context.Context, recipeID string) (domain.ExternalRecipe, error)
		Search(ctx context.Context, params domain.SearchRecipesRequest) ([]domain.ExternalRecipe, error)
		Random(ctx context.Context, number int, tags string) ([]domain.ExternalRecipe, error)
	}

	client struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}
)

func NewClient(baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// wireRecipe is the upstream representation; the public shape renames
// extendedIngredients to ingredients.
type wireRecipe struct {
	ID                   int64                        `json:"id"`
	Title                string                       `json:"title"`
	ReadyInMinutes       int                          `json:"readyInMinutes"`
	Image                string                       `json:"image"`
	AggregateLikes       int                          `json:"aggregateLikes"`
	Vegan                bool                         `json:"vegan"`
	Vegetarian           bool                         `json:"vegetarian"`
	GlutenFree           bool                         `json:"glutenFree"`
	Servings             int                          `json:"servings"`
	Instructions         string                       `json:"instructions"`
	AnalyzedInstructions []domain.AnalyzedInstruction `json:"analyzedInstructions"`
	ExtendedIngredients  []domain.ExternalIngredient  `json:"extendedIngredients"`
}

func (w wireRecipe) toDomain() domain.ExternalRecipe {
	analyzed := w.AnalyzedInstructions
	if analyzed == nil {
		analyzed = []domain.AnalyzedInstruction{}
	}
	ingredients := w.ExtendedIngredients
	if ingredients == nil {
		ingredients = []domain.ExternalIngredient{}
	}
	return domain.ExternalRecipe{
		ID:                   w.ID,
		Title:                w.Title,
		ReadyInMinutes:       w.ReadyInMinutes,
		Image:                w.Image,
		AggregateLikes:       w.AggregateLikes,
		Vegan:                w.Vegan,
		Vegetarian:           w.Vegetarian,
		GlutenFree:           w.GlutenFree,
		Servings:             w.Servings,
		Instructions:         w.Instructions,
		AnalyzedInstructions: analyzed,
		Ingredients:          ingredients,
	}
}

func (c *client) GetRecipeInformation(ctx context.Context, recipeID string) (domain.ExternalRecipe, error) {
	params := url.Values{}
	params.Set("includeNutrition", "false")

	var recipe wireRecipe
	if err := c.get(ctx, fmt.Sprintf("/%s/information", url.PathEscape(recipeID)), params, &recipe); err != nil {
		return domain.ExternalRecipe{}, err
	}
	return recipe.toDomain(), nil
}

func (c *client) Search(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.ExternalRecipe, error) {
	number := req.Limit
	if number <= 0 {
		number = 5
	}

	params := url.Values{}
	params.Set("query", req.Query)
	params.Set("cuisine", req.Cuisines)
	params.Set("diet", req.Diets)
	params.Set("intolerances", req.Intolerances)
	params.Set("number", strconv.Itoa(number))
	params.Set("sort", req.Sort)
	params.Set("addRecipeInformation", "true")
	params.Set("instructionsRequired", "true")
	params.Set("fillIngredients", "true")

	var body struct {
		Results []wireRecipe `json:"results"`
	}
	if err := c.get(ctx, "/complexSearch", params, &body); err != nil {
		return nil, err
	}

	results := make([]domain.ExternalRecipe, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, r.toDomain())
	}
	return results, nil
}

func (c *client) Random(ctx context.Context, number int, tags string) ([]domain.ExternalRecipe, error) {
	if number <= 0 {
		number = 5
	}

	params := url.Values{}
	params.Set("number", strconv.Itoa(number))
	params.Set("tags", tags)

	var body struct {
		Recipes []wireRecipe `json:"recipes"`
	}
	if err := c.get(ctx, "/random", params, &body); err != nil {
		return nil, err
	}

	recipes := make([]domain.ExternalRecipe, 0, len(body.Recipes))
	for _, r := range body.Recipes {
		recipes = append(recipes, r.toDomain())
	}
	return recipes, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusTooManyRequests:
		return domain.ErrUpstreamQuota
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrRecipeNotFound
	default:
		return fmt.Errorf("%w: status %s", domain.ErrUpstreamFailed, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrUpstreamFailed, err)
	}
	return nil
}
