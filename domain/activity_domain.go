package domain

import "errors"

var (
	MessageSuccessAddFavorite    = "The Recipe successfully saved as favorite"
	MessageSuccessRemoveFavorite = "The Recipe successfully removed from favorites"
	MessageSuccessGetFavorites   = "success get favorite recipes"
	MessageSuccessGetViewed      = "success get recently viewed recipes"
	MessageSuccessGetProgress    = "success get recipe progress"
	MessageSuccessSaveProgress   = "progress saved successfully"

	MessageFailedAddFavorite    = "failed to save recipe as favorite"
	MessageFailedRemoveFavorite = "failed to remove recipe from favorites"
	MessageFailedGetFavorites   = "failed to get favorite recipes"
	MessageFailedGetViewed      = "failed to get recently viewed recipes"
	MessageFailedGetProgress    = "failed to get recipe progress"
	MessageFailedSaveProgress   = "failed to save recipe progress"

	ErrInvalidProgressSteps = errors.New("completed steps must be non-negative indices")
)

type (
	FavoriteRequest struct {
		RecipeID string `json:"recipeId" validate:"required"`
	}

	SaveProgressRequest struct {
		CompletedSteps []int `json:"completedSteps" validate:"required"`
	}

	ProgressResponse struct {
		CompletedSteps []int `json:"completedSteps"`
	}
)
