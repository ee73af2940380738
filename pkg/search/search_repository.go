package search

import (
	"context"
	"errors"

	"recipehub-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		SaveLastSearch(ctx context.Context, search *entities.LastSearch) error
		GetLastSearch(ctx context.Context, userID uuid.UUID) (*entities.LastSearch, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// SaveLastSearch keeps one row per user, overwriting any previous search.
func (r *searchRepository) SaveLastSearch(ctx context.Context, search *entities.LastSearch) error {
	var existing entities.LastSearch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", search.UserID).
		First(&existing).Error
	if err == nil {
		existing.Query = search.Query
		existing.Cuisines = search.Cuisines
		existing.Diets = search.Diets
		existing.Intolerances = search.Intolerances
		existing.Limit = search.Limit
		existing.Sort = search.Sort
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(search).Error
}

func (r *searchRepository) GetLastSearch(ctx context.Context, userID uuid.UUID) (*entities.LastSearch, error) {
	var search entities.LastSearch
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&search).Error; err != nil {
		return nil, err
	}
	return &search, nil
}
