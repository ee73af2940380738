package activity

import (
	"context"
	"encoding/json"
	"errors"

	"recipehub-backend/domain"
	"recipehub-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A user's view history is bounded to the three most recent entries on read.
const recentlyViewedLimit = 3

type (
	ActivityService interface {
		MarkAsFavorite(ctx context.Context, userID, recipeID string) error
		GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.RecipeDetail, error)
		RemoveFromFavorites(ctx context.Context, userID, recipeID string) error
		RecordView(ctx context.Context, userID, recipeID string) error
		GetRecentlyViewed(ctx context.Context, userID string) ([]domain.RecipeDetail, error)
		GetProgress(ctx context.Context, userID, recipeID string) (domain.ProgressResponse, error)
		SetProgress(ctx context.Context, userID, recipeID string, completedSteps []int) error
	}

	activityService struct {
		activityRepository ActivityRepository
		recipeService      recipe.RecipeService
	}
)

func NewActivityService(activityRepository ActivityRepository, recipeService recipe.RecipeService) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		recipeService:      recipeService,
	}
}

// MarkAsFavorite does not check that the recipe id resolves; external ids are
// not stored locally so eager validation would cost an upstream call per save.
func (s *activityService) MarkAsFavorite(ctx context.Context, userID, recipeID string) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.activityRepository.AddFavorite(ctx, owner, recipeID)
}

func (s *activityService) GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.RecipeDetail, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipeIDs, err := s.activityRepository.GetFavoriteRecipeIDs(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.recipeService.GetRecipesPreview(ctx, recipeIDs), nil
}

func (s *activityService) RemoveFromFavorites(ctx context.Context, userID, recipeID string) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	// Deleting a favorite that does not exist is not an error.
	return s.activityRepository.RemoveFavorite(ctx, owner, recipeID)
}

func (s *activityService) RecordView(ctx context.Context, userID, recipeID string) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.activityRepository.AddHistory(ctx, owner, recipeID)
}

func (s *activityService) GetRecentlyViewed(ctx context.Context, userID string) ([]domain.RecipeDetail, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipeIDs, err := s.activityRepository.GetRecentRecipeIDs(ctx, owner, recentlyViewedLimit)
	if err != nil {
		return nil, err
	}
	return s.recipeService.GetRecipesPreview(ctx, recipeIDs), nil
}

func (s *activityService) GetProgress(ctx context.Context, userID, recipeID string) (domain.ProgressResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProgressResponse{}, domain.ErrParseUUID
	}

	progress, err := s.activityRepository.GetProgress(ctx, owner, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProgressResponse{CompletedSteps: []int{}}, nil
		}
		return domain.ProgressResponse{}, err
	}

	var steps []int
	if err := json.Unmarshal([]byte(progress.CompletedSteps), &steps); err != nil || steps == nil {
		steps = []int{}
	}
	return domain.ProgressResponse{CompletedSteps: steps}, nil
}

func (s *activityService) SetProgress(ctx context.Context, userID, recipeID string, completedSteps []int) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	for _, step := range completedSteps {
		if step < 0 {
			return domain.ErrInvalidProgressSteps
		}
	}

	encoded, err := json.Marshal(completedSteps)
	if err != nil {
		return err
	}
	return s.activityRepository.SaveProgress(ctx, owner, recipeID, string(encoded))
}
