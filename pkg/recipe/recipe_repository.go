package recipe

import (
	"context"

	"recipehub-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateFamilyRecipe(ctx context.Context, recipe *entities.FamilyRecipe) error
		CreateUserRecipe(ctx context.Context, recipe *entities.UserRecipe) error
		GetFamilyRecipeByID(ctx context.Context, id uuid.UUID) (*entities.FamilyRecipe, error)
		GetUserRecipeByID(ctx context.Context, id uuid.UUID) (*entities.UserRecipe, error)
		GetFamilyRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error)
		GetUserRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateFamilyRecipe(ctx context.Context, recipe *entities.FamilyRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) CreateUserRecipe(ctx context.Context, recipe *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetFamilyRecipeByID(ctx context.Context, id uuid.UUID) (*entities.FamilyRecipe, error) {
	var recipe entities.FamilyRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetUserRecipeByID(ctx context.Context, id uuid.UUID) (*entities.UserRecipe, error) {
	var recipe entities.UserRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetFamilyRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error) {
	var recipes []*entities.FamilyRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetUserRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error) {
	var recipes []*entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
