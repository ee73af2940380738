package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetInstructions = "success get recipe instructions"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessUploadPhoto     = "photo uploaded successfully"

	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetInstructions = "failed to get recipe instructions"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedUploadPhoto     = "failed to upload photo"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidRecipeData = errors.New("invalid recipe data")
)

const (
	RecipeSourceFamily   = "family"
	RecipeSourceUser     = "user"
	RecipeSourceExternal = "external"
)

type (
	Ingredient struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity,omitempty"`
		Unit     string  `json:"unit,omitempty"`
	}

	FamilyRecipeView struct {
		ID              string       `json:"id"`
		Title           string       `json:"title"`
		CreatedBy       string       `json:"created_by"`
		TraditionalDate string       `json:"traditional_date"`
		Ingredients     []Ingredient `json:"ingredients"`
		Instructions    []string     `json:"instructions"`
		Photos          []string     `json:"photos"`
	}

	UserRecipeView struct {
		ID           string       `json:"id"`
		Title        string       `json:"title"`
		Description  string       `json:"description"`
		Ingredients  []Ingredient `json:"ingredients"`
		Instructions []string     `json:"instructions"`
		Photos       []string     `json:"photos"`
	}

	ExternalIngredient struct {
		ID       int64   `json:"id,omitempty"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount,omitempty"`
		Unit     string  `json:"unit,omitempty"`
		Original string  `json:"original,omitempty"`
	}

	InstructionStep struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	}

	AnalyzedInstruction struct {
		Name  string            `json:"name"`
		Steps []InstructionStep `json:"steps"`
	}

	ExternalRecipe struct {
		ID                   int64                 `json:"id"`
		Title                string                `json:"title"`
		ReadyInMinutes       int                   `json:"readyInMinutes"`
		Image                string                `json:"image,omitempty"`
		AggregateLikes       int                   `json:"aggregateLikes"`
		Vegan                bool                  `json:"vegan"`
		Vegetarian           bool                  `json:"vegetarian"`
		GlutenFree           bool                  `json:"glutenFree"`
		Servings             int                   `json:"servings"`
		Instructions         string                `json:"instructions"`
		AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
		Ingredients          []ExternalIngredient  `json:"ingredients"`
	}

	// RecipeDetail is the tagged variant a recipe id resolves to. Exactly one
	// of the view pointers is set, matching Source. It marshals flat as the
	// active view so clients see the heterogeneous shapes of the three
	// sources directly.
	RecipeDetail struct {
		Source     string            `json:"-"`
		Family     *FamilyRecipeView `json:"-"`
		UserRecipe *UserRecipeView   `json:"-"`
		External   *ExternalRecipe   `json:"-"`
	}

	RecipeInstructions struct {
		Instructions         []string              `json:"instructions"`
		AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	}

	CreateFamilyRecipeRequest struct {
		Title           string       `json:"title" validate:"required"`
		CreatedBy       string       `json:"created_by" validate:"required"`
		TraditionalDate string       `json:"traditional_date"`
		Ingredients     []Ingredient `json:"ingredients" validate:"required,min=1"`
		Instructions    []string     `json:"instructions" validate:"required,min=1"`
		Photos          []string     `json:"photos" validate:"omitempty,dive,url"`
	}

	CreateUserRecipeRequest struct {
		Title        string       `json:"title" validate:"required"`
		Description  string       `json:"description"`
		Ingredients  []Ingredient `json:"ingredients" validate:"required,min=1"`
		Instructions []string     `json:"instructions" validate:"required,min=1"`
		Photos       []string     `json:"photos" validate:"omitempty,dive,url"`
	}

	CreateRecipeResponse struct {
		RecipeID string `json:"recipe_id"`
	}

	UploadPhotoResponse struct {
		PhotoURL string `json:"photo_url"`
	}
)

func (d RecipeDetail) MarshalJSON() ([]byte, error) {
	switch d.Source {
	case RecipeSourceFamily:
		return json.Marshal(d.Family)
	case RecipeSourceUser:
		return json.Marshal(d.UserRecipe)
	case RecipeSourceExternal:
		return json.Marshal(d.External)
	}
	return []byte("null"), nil
}
