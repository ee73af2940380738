package search

import (
	"context"
	"errors"
	"log"

	"recipehub-backend/domain"
	"recipehub-backend/entities"
	"recipehub-backend/pkg/spoonacular"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultSearchLimit = 5

type (
	SearchService interface {
		// Search proxies one external complex-search call; when userID is
		// non-empty the parameters are persisted as the user's last search.
		Search(ctx context.Context, req domain.SearchRecipesRequest, userID string) ([]domain.ExternalRecipe, error)
		Random(ctx context.Context, number int, tags string) ([]domain.ExternalRecipe, error)
		// LastSearch replays the stored parameters live against the external
		// API; results are never cached locally.
		LastSearch(ctx context.Context, userID string) (domain.LastSearchResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
		external         spoonacular.Client
	}
)

func NewSearchService(searchRepository SearchRepository, external spoonacular.Client) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		external:         external,
	}
}

func (s *searchService) Search(ctx context.Context, req domain.SearchRecipesRequest, userID string) ([]domain.ExternalRecipe, error) {
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	results, err := s.external.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	if userID != "" {
		if saveErr := s.saveLastSearch(ctx, userID, req); saveErr != nil {
			// Persisting the search is best-effort; the results still stand.
			log.Printf("failed to save last search for user %s: %v", userID, saveErr)
		}
	}

	return results, nil
}

func (s *searchService) Random(ctx context.Context, number int, tags string) ([]domain.ExternalRecipe, error) {
	return s.external.Random(ctx, number, tags)
}

func (s *searchService) LastSearch(ctx context.Context, userID string) (domain.LastSearchResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.LastSearchResponse{}, domain.ErrParseUUID
	}

	stored, err := s.searchRepository.GetLastSearch(ctx, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LastSearchResponse{}, domain.ErrNoLastSearch
		}
		return domain.LastSearchResponse{}, err
	}

	req := domain.SearchRecipesRequest{
		Query:        stored.Query,
		Cuisines:     stored.Cuisines,
		Diets:        stored.Diets,
		Intolerances: stored.Intolerances,
		Limit:        stored.Limit,
		Sort:         stored.Sort,
	}
	results, err := s.external.Search(ctx, req)
	if err != nil {
		return domain.LastSearchResponse{}, err
	}

	return domain.LastSearchResponse{
		Query:        stored.Query,
		Cuisines:     stored.Cuisines,
		Diets:        stored.Diets,
		Intolerances: stored.Intolerances,
		Limit:        stored.Limit,
		Sort:         stored.Sort,
		Results:      results,
	}, nil
}

func (s *searchService) saveLastSearch(ctx context.Context, userID string, req domain.SearchRecipesRequest) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.searchRepository.SaveLastSearch(ctx, &entities.LastSearch{
		ID:           uuid.New(),
		UserID:       owner,
		Query:        req.Query,
		Cuisines:     req.Cuisines,
		Diets:        req.Diets,
		Intolerances: req.Intolerances,
		Limit:        req.Limit,
		Sort:         req.Sort,
	})
}
