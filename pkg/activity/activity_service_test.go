package activity

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

type favoriteKey struct {
	userID   uuid.UUID
	recipeID string
}

type fakeActivityRepository struct {
	favorites []favoriteKey
	history   []favoriteKey // newest appended last
	progress  map[favoriteKey]string
}

func newFakeActivityRepository() *fakeActivityRepository {
	return &fakeActivityRepository{progress: make(map[favoriteKey]string)}
}

func (f *fakeActivityRepository) AddFavorite(_ context.Context, userID uuid.UUID, recipeID string) error {
	key := favoriteKey{userID, recipeID}
	for _, existing := range f.favorites {
		if existing == key {
			return nil
		}
	}
	f.favorites = append(f.favorites, key)
	return nil
}

func (f *fakeActivityRepository) GetFavoriteRecipeIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	// Newest first, matching the created_at desc ordering.
	ids := []string{}
	for i := len(f.favorites) - 1; i >= 0; i-- {
		if f.favorites[i].userID == userID {
			ids = append(ids, f.favorites[i].recipeID)
		}
	}
	return ids, nil
}

func (f *fakeActivityRepository) RemoveFavorite(_ context.Context, userID uuid.UUID, recipeID string) error {
	key := favoriteKey{userID, recipeID}
	kept := f.favorites[:0]
	for _, existing := range f.favorites {
		if existing != key {
			kept = append(kept, existing)
		}
	}
	f.favorites = kept
	return nil
}

func (f *fakeActivityRepository) AddHistory(_ context.Context, userID uuid.UUID, recipeID string) error {
	f.history = append(f.history, favoriteKey{userID, recipeID})
	return nil
}

func (f *fakeActivityRepository) GetRecentRecipeIDs(_ context.Context, userID uuid.UUID, limit int) ([]string, error) {
	ids := []string{}
	for i := len(f.history) - 1; i >= 0 && len(ids) < limit; i-- {
		if f.history[i].userID == userID {
			ids = append(ids, f.history[i].recipeID)
		}
	}
	return ids, nil
}

func (f *fakeActivityRepository) GetProgress(_ context.Context, userID uuid.UUID, recipeID string) (*entities.RecipeProgress, error) {
	steps, ok := f.progress[favoriteKey{userID, recipeID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entities.RecipeProgress{
		ID:             uuid.New(),
		UserID:         userID,
		RecipeID:       recipeID,
		CompletedSteps: steps,
	}, nil
}

func (f *fakeActivityRepository) SaveProgress(_ context.Context, userID uuid.UUID, recipeID string, completedSteps string) error {
	f.progress[favoriteKey{userID, recipeID}] = completedSteps
	return nil
}

// fakeRecipeService resolves every id to an external preview so activity tests
// exercise ordering and bounds without touching recipe storage.
type fakeRecipeService struct{}

func (fakeRecipeService) GetRecipeDetails(context.Context, string) (domain.RecipeDetail, error) {
	return domain.RecipeDetail{}, domain.ErrRecipeNotFound
}

func (fakeRecipeService) GetRecipeInstructions(context.Context, string) (domain.RecipeInstructions, error) {
	return domain.RecipeInstructions{}, domain.ErrRecipeNotFound
}

func (fakeRecipeService) GetRecipesPreview(_ context.Context, recipeIDs []string) []domain.RecipeDetail {
	previews := make([]domain.RecipeDetail, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		previews = append(previews, domain.RecipeDetail{
			Source:   domain.RecipeSourceExternal,
			External: &domain.ExternalRecipe{Title: id},
		})
	}
	return previews
}

func (fakeRecipeService) CreateFamilyRecipe(context.Context, string, domain.CreateFamilyRecipeRequest) (domain.CreateRecipeResponse, error) {
	return domain.CreateRecipeResponse{}, nil
}

func (fakeRecipeService) CreateUserRecipe(context.Context, string, domain.CreateUserRecipeRequest) (domain.CreateRecipeResponse, error) {
	return domain.CreateRecipeResponse{}, nil
}

func (fakeRecipeService) GetFamilyRecipes(context.Context, string) ([]domain.FamilyRecipeView, error) {
	return nil, nil
}

func (fakeRecipeService) GetUserRecipes(context.Context, string) ([]domain.UserRecipeView, error) {
	return nil, nil
}

func previewTitles(previews []domain.RecipeDetail) []string {
	titles := make([]string, 0, len(previews))
	for _, p := range previews {
		titles = append(titles, p.External.Title)
	}
	return titles
}

func TestFavoriteLifecycle(t *testing.T) {
	repo := newFakeActivityRepository()
	svc := NewActivityService(repo, fakeRecipeService{})
	userID := uuid.New().String()

	require.NoError(t, svc.MarkAsFavorite(context.Background(), userID, "101"))
	require.NoError(t, svc.MarkAsFavorite(context.Background(), userID, "202"))
	// Saving the same favorite twice is a no-op.
	require.NoError(t, svc.MarkAsFavorite(context.Background(), userID, "101"))

	favorites, err := svc.GetFavoriteRecipes(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"202", "101"}, previewTitles(favorites))

	require.NoError(t, svc.RemoveFromFavorites(context.Background(), userID, "101"))
	favorites, err = svc.GetFavoriteRecipes(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"202"}, previewTitles(favorites))

	// Removing an absent favorite is not an error.
	require.NoError(t, svc.RemoveFromFavorites(context.Background(), userID, "101"))
}

func TestRecentlyViewedBoundedToLatestThree(t *testing.T) {
	repo := newFakeActivityRepository()
	svc := NewActivityService(repo, fakeRecipeService{})
	userID := uuid.New().String()

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, svc.RecordView(context.Background(), userID, id))
	}

	viewed, err := svc.GetRecentlyViewed(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "3"}, previewTitles(viewed))
}

func TestProgressReplacedOnSave(t *testing.T) {
	repo := newFakeActivityRepository()
	svc := NewActivityService(repo, fakeRecipeService{})
	userID := uuid.New().String()

	require.NoError(t, svc.SetProgress(context.Background(), userID, "715538", []int{0, 1}))
	require.NoError(t, svc.SetProgress(context.Background(), userID, "715538", []int{0, 1, 4}))

	progress, err := svc.GetProgress(context.Background(), userID, "715538")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, progress.CompletedSteps)
}

func TestProgressAbsentIsEmpty(t *testing.T) {
	svc := NewActivityService(newFakeActivityRepository(), fakeRecipeService{})

	progress, err := svc.GetProgress(context.Background(), uuid.New().String(), "715538")
	require.NoError(t, err)
	require.NotNil(t, progress.CompletedSteps)
	assert.Empty(t, progress.CompletedSteps)
}

func TestProgressRejectsNegativeSteps(t *testing.T) {
	svc := NewActivityService(newFakeActivityRepository(), fakeRecipeService{})

	err := svc.SetProgress(context.Background(), uuid.New().String(), "715538", []int{2, -1})
	assert.ErrorIs(t, err, domain.ErrInvalidProgressSteps)
}

func TestActivityRejectsMalformedUserID(t *testing.T) {
	svc := NewActivityService(newFakeActivityRepository(), fakeRecipeService{})

	assert.ErrorIs(t, svc.MarkAsFavorite(context.Background(), "not-a-uuid", "1"), domain.ErrParseUUID)
	_, err := svc.GetRecentlyViewed(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
