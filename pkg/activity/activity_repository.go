package activity

import (
	"context"
	"errors"
	"time"

	"recipehub-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error
		GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
		RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error
		AddHistory(ctx context.Context, userID uuid.UUID, recipeID string) error
		GetRecentRecipeIDs(ctx context.Context, userID uuid.UUID, limit int) ([]string, error)
		GetProgress(ctx context.Context, userID uuid.UUID, recipeID string) (*entities.RecipeProgress, error)
		SaveProgress(ctx context.Context, userID uuid.UUID, recipeID string, completedSteps string) error
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	var existing entities.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		// Already a favorite.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := entities.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		// The unique index makes a concurrent duplicate insert a no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (r *activityRepository) GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var recipeIDs []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	return recipeIDs, nil
}

func (r *activityRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *activityRepository) AddHistory(ctx context.Context, userID uuid.UUID, recipeID string) error {
	entry := entities.UserHistory{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *activityRepository) GetRecentRecipeIDs(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	var recipeIDs []string
	if err := r.db.WithContext(ctx).
		Model(&entities.UserHistory{}).
		Where("user_id = ?", userID).
		Order("viewed_at desc").
		Limit(limit).
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	return recipeIDs, nil
}

func (r *activityRepository) GetProgress(ctx context.Context, userID uuid.UUID, recipeID string) (*entities.RecipeProgress, error) {
	var progress entities.RecipeProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *activityRepository) SaveProgress(ctx context.Context, userID uuid.UUID, recipeID string, completedSteps string) error {
	var existing entities.RecipeProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		existing.CompletedSteps = completedSteps
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	progress := entities.RecipeProgress{
		ID:             uuid.New(),
		UserID:         userID,
		RecipeID:       recipeID,
		CompletedSteps: completedSteps,
	}
	return r.db.WithContext(ctx).Create(&progress).Error
}
