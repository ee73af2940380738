package domain

import "errors"

var (
	MessageSuccessSearch        = "success search recipes"
	MessageSuccessRandom        = "success get random recipes"
	MessageSuccessLastSearch    = "success get last search"
	MessageFailedSearch         = "failed to search recipes"
	MessageFailedRandom         = "failed to get random recipes"
	MessageFailedLastSearch     = "failed to get last search"

	ErrUpstreamQuota  = errors.New("external recipe API quota exceeded")
	ErrUpstreamFailed = errors.New("external recipe API request failed")
	ErrNoLastSearch   = errors.New("no search saved for user")
)

// Filter vocabularies the external API understands. Served verbatim by the
// filters endpoints so the frontend can populate its dropdowns.
var (
	Cuisines = []string{
		"African", "American", "British", "Cajun", "Caribbean", "Chinese",
		"Eastern European", "European", "French", "German", "Greek", "Indian",
		"Irish", "Italian", "Japanese", "Jewish", "Korean", "Latin American",
		"Mediterranean", "Mexican", "Middle Eastern", "Nordic", "Southern",
		"Spanish", "Thai", "Vietnamese",
	}

	Diets = []string{
		"Gluten Free", "Ketogenic", "Vegetarian", "Lacto-Vegetarian",
		"Ovo-Vegetarian", "Vegan", "Pescetarian", "Paleo", "Primal", "Whole30",
	}

	Intolerances = []string{
		"Dairy", "Egg", "Gluten", "Grain", "Peanut", "Seafood",
		"Sesame", "Shellfish", "Soy", "Sulfite", "Tree Nut", "Wheat",
	}
)

type (
	SearchRecipesRequest struct {
		Query        string `json:"query"`
		Cuisines     string `json:"cuisines"`
		Diets        string `json:"diets"`
		Intolerances string `json:"intolerances"`
		Limit        int    `json:"limit" validate:"omitempty,min=1,max=100"`
		Sort         string `json:"sort"`
	}

	LastSearchResponse struct {
		Query        string           `json:"query"`
		Cuisines     string           `json:"cuisines"`
		Diets        string           `json:"diets"`
		Intolerances string           `json:"intolerances"`
		Limit        int              `json:"limit"`
		Sort         string           `json:"sort"`
		Results      []ExternalRecipe `json:"results"`
	}
)
