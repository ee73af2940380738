package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"recipehub-backend/domain"
	"recipehub-backend/entities"
	"recipehub-backend/pkg/spoonacular"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipeDetails(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		GetRecipeInstructions(ctx context.Context, recipeID string) (domain.RecipeInstructions, error)
		GetRecipesPreview(ctx context.Context, recipeIDs []string) []domain.RecipeDetail
		CreateFamilyRecipe(ctx context.Context, userID string, req domain.CreateFamilyRecipeRequest) (domain.CreateRecipeResponse, error)
		CreateUserRecipe(ctx context.Context, userID string, req domain.CreateUserRecipeRequest) (domain.CreateRecipeResponse, error)
		GetFamilyRecipes(ctx context.Context, ownerID string) ([]domain.FamilyRecipeView, error)
		GetUserRecipes(ctx context.Context, ownerID string) ([]domain.UserRecipeView, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		external         spoonacular.Client
	}
)

func NewRecipeService(recipeRepository RecipeRepository, external spoonacular.Client) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		external:         external,
	}
}

// GetRecipeDetails resolves a recipe id against the three sources in fixed
// priority order: family recipes, then user recipes, then the external API.
// Locally authored recipes carry uuid ids while the external API assigns
// numeric ones, so an id that is not a uuid can only be external and an id
// that is one is never forwarded upstream.
func (s *recipeService) GetRecipeDetails(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	localID, err := uuid.Parse(recipeID)
	if err != nil {
		external, err := s.external.GetRecipeInformation(ctx, recipeID)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		return domain.RecipeDetail{Source: domain.RecipeSourceExternal, External: &external}, nil
	}

	family, err := s.recipeRepository.GetFamilyRecipeByID(ctx, localID)
	if err == nil {
		view := familyView(family)
		return domain.RecipeDetail{Source: domain.RecipeSourceFamily, Family: &view}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeDetail{}, err
	}

	userRecipe, err := s.recipeRepository.GetUserRecipeByID(ctx, localID)
	if err == nil {
		view := userView(userRecipe)
		return domain.RecipeDetail{Source: domain.RecipeSourceUser, UserRecipe: &view}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeDetail{}, err
	}

	return domain.RecipeDetail{}, domain.ErrRecipeNotFound
}

// GetRecipeInstructions serves family recipes only; a miss is a not-found and
// the external API is never consulted.
func (s *recipeService) GetRecipeInstructions(ctx context.Context, recipeID string) (domain.RecipeInstructions, error) {
	localID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeInstructions{}, domain.ErrRecipeNotFound
	}

	family, err := s.recipeRepository.GetFamilyRecipeByID(ctx, localID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeInstructions{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeInstructions{}, err
	}

	return domain.RecipeInstructions{
		Instructions:         decodeInstructions(family.Instructions),
		AnalyzedInstructions: []domain.AnalyzedInstruction{},
	}, nil
}

// GetRecipesPreview resolves each id independently; ids that fail to resolve
// are logged and skipped, never failing the batch. Input order is preserved.
func (s *recipeService) GetRecipesPreview(ctx context.Context, recipeIDs []string) []domain.RecipeDetail {
	previews := make([]domain.RecipeDetail, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		detail, err := s.GetRecipeDetails(ctx, id)
		if err != nil {
			log.Printf("skipping recipe %s in preview: %v", id, err)
			continue
		}
		previews = append(previews, detail)
	}
	return previews
}

func (s *recipeService) CreateFamilyRecipe(ctx context.Context, userID string, req domain.CreateFamilyRecipeRequest) (domain.CreateRecipeResponse, error) {
	if req.Title == "" || len(req.Ingredients) == 0 || len(req.Instructions) == 0 {
		return domain.CreateRecipeResponse{}, domain.ErrInvalidRecipeData
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	newRecipe := &entities.FamilyRecipe{
		ID:              uuid.New(),
		UserID:          ownerID,
		Title:           req.Title,
		CreatedBy:       req.CreatedBy,
		TraditionalDate: req.TraditionalDate,
		Ingredients:     encodeJSON(req.Ingredients),
		Instructions:    encodeJSON(req.Instructions),
		Photos:          encodeJSON(orEmpty(req.Photos)),
	}

	if err := s.recipeRepository.CreateFamilyRecipe(ctx, newRecipe); err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	return domain.CreateRecipeResponse{RecipeID: newRecipe.ID.String()}, nil
}

func (s *recipeService) CreateUserRecipe(ctx context.Context, userID string, req domain.CreateUserRecipeRequest) (domain.CreateRecipeResponse, error) {
	if req.Title == "" || len(req.Ingredients) == 0 || len(req.Instructions) == 0 {
		return domain.CreateRecipeResponse{}, domain.ErrInvalidRecipeData
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	newRecipe := &entities.UserRecipe{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  encodeJSON(req.Ingredients),
		Instructions: encodeJSON(req.Instructions),
		Photos:       encodeJSON(orEmpty(req.Photos)),
	}

	if err := s.recipeRepository.CreateUserRecipe(ctx, newRecipe); err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	return domain.CreateRecipeResponse{RecipeID: newRecipe.ID.String()}, nil
}

func (s *recipeService) GetFamilyRecipes(ctx context.Context, ownerID string) ([]domain.FamilyRecipeView, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipes, err := s.recipeRepository.GetFamilyRecipesByUser(ctx, owner)
	if err != nil {
		return nil, err
	}

	views := make([]domain.FamilyRecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, familyView(r))
	}
	return views, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, ownerID string) ([]domain.UserRecipeView, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipes, err := s.recipeRepository.GetUserRecipesByUser(ctx, owner)
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserRecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, userView(r))
	}
	return views, nil
}

func familyView(r *entities.FamilyRecipe) domain.FamilyRecipeView {
	return domain.FamilyRecipeView{
		ID:              r.ID.String(),
		Title:           r.Title,
		CreatedBy:       r.CreatedBy,
		TraditionalDate: r.TraditionalDate,
		Ingredients:     decodeIngredients(r.Ingredients),
		Instructions:    decodeInstructions(r.Instructions),
		Photos:          decodePhotos(r.Photos),
	}
}

func userView(r *entities.UserRecipe) domain.UserRecipeView {
	return domain.UserRecipeView{
		ID:           r.ID.String(),
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  decodeIngredients(r.Ingredients),
		Instructions: decodeInstructions(r.Instructions),
		Photos:       decodePhotos(r.Photos),
	}
}

// Serialized columns are written by this service, so a decode failure means a
// hand-edited row; fall back to empty rather than failing the read.
func decodeIngredients(raw string) []domain.Ingredient {
	var ingredients []domain.Ingredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil || ingredients == nil {
		return []domain.Ingredient{}
	}
	return ingredients
}

func decodeInstructions(raw string) []string {
	var instructions []string
	if err := json.Unmarshal([]byte(raw), &instructions); err != nil || instructions == nil {
		return []string{}
	}
	return instructions
}

func decodePhotos(raw string) []string {
	var photos []string
	if err := json.Unmarshal([]byte(raw), &photos); err != nil || photos == nil {
		return []string{}
	}
	return photos
}

func encodeJSON(v any) string {
	encoded, _ := json.Marshal(v)
	return string(encoded)
}

func orEmpty(photos []string) []string {
	if photos == nil {
		return []string{}
	}
	return photos
}
