package recipe

import (
	"context"
	"testing"

	"recipehub-backend/domain"
	"recipehub-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	family map[uuid.UUID]*entities.FamilyRecipe
	user   map[uuid.UUID]*entities.UserRecipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		family: make(map[uuid.UUID]*entities.FamilyRecipe),
		user:   make(map[uuid.UUID]*entities.UserRecipe),
	}
}

func (f *fakeRecipeRepository) CreateFamilyRecipe(_ context.Context, r *entities.FamilyRecipe) error {
	f.family[r.ID] = r
	return nil
}

func (f *fakeRecipeRepository) CreateUserRecipe(_ context.Context, r *entities.UserRecipe) error {
	f.user[r.ID] = r
	return nil
}

func (f *fakeRecipeRepository) GetFamilyRecipeByID(_ context.Context, id uuid.UUID) (*entities.FamilyRecipe, error) {
	if r, ok := f.family[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) GetUserRecipeByID(_ context.Context, id uuid.UUID) (*entities.UserRecipe, error) {
	if r, ok := f.user[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) GetFamilyRecipesByUser(_ context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error) {
	var recipes []*entities.FamilyRecipe
	for _, r := range f.family {
		if r.UserID == userID {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

func (f *fakeRecipeRepository) GetUserRecipesByUser(_ context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error) {
	var recipes []*entities.UserRecipe
	for _, r := range f.user {
		if r.UserID == userID {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// stubExternalClient records how often the external API is contacted.
type stubExternalClient struct {
	infoCalls   int
	searchCalls int
	randomCalls int
	recipe      domain.ExternalRecipe
	err         error
}

func (s *stubExternalClient) GetRecipeInformation(_ context.Context, _ string) (domain.ExternalRecipe, error) {
	s.infoCalls++
	if s.err != nil {
		return domain.ExternalRecipe{}, s.err
	}
	return s.recipe, nil
}

func (s *stubExternalClient) Search(_ context.Context, _ domain.SearchRecipesRequest) ([]domain.ExternalRecipe, error) {
	s.searchCalls++
	return nil, s.err
}

func (s *stubExternalClient) Random(_ context.Context, _ int, _ string) ([]domain.ExternalRecipe, error) {
	s.randomCalls++
	return nil, s.err
}

func familyRecipeRequest() domain.CreateFamilyRecipeRequest {
	return domain.CreateFamilyRecipeRequest{
		Title:           "Grandma's Kubbeh",
		CreatedBy:       "Grandma Rachel",
		TraditionalDate: "Rosh Hashanah",
		Ingredients: []domain.Ingredient{
			{Name: "semolina", Quantity: 500, Unit: "g"},
			{Name: "ground beef", Quantity: 300, Unit: "g"},
		},
		Instructions: []string{"Knead the dough", "Stuff and shape", "Simmer in broth"},
		Photos:       []string{"https://photos.example.com/kubbeh.jpg"},
	}
}

func TestResolutionPrefersFamilyRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{}
	svc := NewRecipeService(repo, external)

	ownerID := uuid.New().String()
	created, err := svc.CreateFamilyRecipe(context.Background(), ownerID, familyRecipeRequest())
	require.NoError(t, err)

	detail, err := svc.GetRecipeDetails(context.Background(), created.RecipeID)
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeSourceFamily, detail.Source)
	require.NotNil(t, detail.Family)
	assert.Equal(t, "Grandma's Kubbeh", detail.Family.Title)
	assert.Equal(t, "Grandma Rachel", detail.Family.CreatedBy)
	// Local hit must never reach the external API.
	assert.Zero(t, external.infoCalls)
}

func TestResolutionFallsBackToUserRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{}
	svc := NewRecipeService(repo, external)

	created, err := svc.CreateUserRecipe(context.Background(), uuid.New().String(), domain.CreateUserRecipeRequest{
		Title:        "Weeknight Shakshuka",
		Description:  "Eggs poached in spiced tomato sauce",
		Ingredients:  []domain.Ingredient{{Name: "eggs", Quantity: 4}},
		Instructions: []string{"Simmer sauce", "Poach eggs"},
	})
	require.NoError(t, err)

	detail, err := svc.GetRecipeDetails(context.Background(), created.RecipeID)
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeSourceUser, detail.Source)
	require.NotNil(t, detail.UserRecipe)
	assert.Equal(t, "Weeknight Shakshuka", detail.UserRecipe.Title)
	assert.Equal(t, "Eggs poached in spiced tomato sauce", detail.UserRecipe.Description)
	assert.Zero(t, external.infoCalls)
}

func TestResolutionRoutesNonLocalIDsExternally(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{recipe: domain.ExternalRecipe{
		ID:             715538,
		Title:          "Bruschetta Style Pork & Pasta",
		ReadyInMinutes: 35,
		Vegetarian:     false,
	}}
	svc := NewRecipeService(repo, external)

	detail, err := svc.GetRecipeDetails(context.Background(), "715538")
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeSourceExternal, detail.Source)
	require.NotNil(t, detail.External)
	assert.Equal(t, int64(715538), detail.External.ID)
	assert.Equal(t, 1, external.infoCalls)
}

func TestResolutionMissOnLocalIDNeverGoesExternal(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{}
	svc := NewRecipeService(repo, external)

	_, err := svc.GetRecipeDetails(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Zero(t, external.infoCalls)
}

func TestInstructionsServeFamilyRecipesOnly(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{}
	svc := NewRecipeService(repo, external)

	created, err := svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), familyRecipeRequest())
	require.NoError(t, err)

	instructions, err := svc.GetRecipeInstructions(context.Background(), created.RecipeID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Knead the dough", "Stuff and shape", "Simmer in broth"}, instructions.Instructions)
	assert.NotNil(t, instructions.AnalyzedInstructions)

	// An external id is a miss, not a fallback.
	_, err = svc.GetRecipeInstructions(context.Background(), "715538")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Zero(t, external.infoCalls)
}

func TestPreviewSkipsUnresolvableIDs(t *testing.T) {
	repo := newFakeRecipeRepository()
	external := &stubExternalClient{err: domain.ErrRecipeNotFound}
	svc := NewRecipeService(repo, external)

	first, err := svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), familyRecipeRequest())
	require.NoError(t, err)
	second, err := svc.CreateUserRecipe(context.Background(), uuid.New().String(), domain.CreateUserRecipeRequest{
		Title:        "Toast",
		Ingredients:  []domain.Ingredient{{Name: "bread"}},
		Instructions: []string{"Toast it"},
	})
	require.NoError(t, err)

	previews := svc.GetRecipesPreview(context.Background(), []string{
		first.RecipeID,
		"999999", // external miss, skipped
		second.RecipeID,
	})

	require.Len(t, previews, 2)
	assert.Equal(t, domain.RecipeSourceFamily, previews[0].Source)
	assert.Equal(t, domain.RecipeSourceUser, previews[1].Source)
}

func TestCreateFamilyRecipeValidation(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), &stubExternalClient{})

	noIngredients := familyRecipeRequest()
	noIngredients.Ingredients = nil
	_, err := svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), noIngredients)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeData)

	noInstructions := familyRecipeRequest()
	noInstructions.Instructions = []string{}
	_, err = svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), noInstructions)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeData)

	noTitle := familyRecipeRequest()
	noTitle.Title = ""
	_, err = svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), noTitle)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeData)
}

func TestSerializedColumnsRoundTrip(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &stubExternalClient{})

	req := familyRecipeRequest()
	created, err := svc.CreateFamilyRecipe(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)

	detail, err := svc.GetRecipeDetails(context.Background(), created.RecipeID)
	require.NoError(t, err)

	require.NotNil(t, detail.Family)
	assert.Equal(t, req.Ingredients, detail.Family.Ingredients)
	assert.Equal(t, req.Instructions, detail.Family.Instructions)
	assert.Equal(t, req.Photos, detail.Family.Photos)
}
