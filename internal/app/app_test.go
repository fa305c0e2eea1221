package app_test

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/cache"
	"go.trai.ch/pantry/internal/adapters/logger"
	"go.trai.ch/pantry/internal/app"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports/mocks"
	"go.trai.ch/pantry/internal/engine/mutator"
	"go.uber.org/mock/gomock"
)

var (
	recipeA = domain.Recipe{ID: "a", Title: "Älplermagronen", Servings: 4, Category: "dinner"}
	recipeB = domain.Recipe{ID: "b", Title: "Birchermüesli", Servings: 2, Category: "breakfast"}
)

func newApp(t *testing.T) (*app.App, *cache.Store, *mocks.MockRecipeService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRecipeService(ctrl)
	up := mocks.NewMockImageUploader(ctrl)
	store := cache.New(svc, nil)
	log := logger.New()
	log.SetOutput(io.Discard)
	return app.New(store, svc, mutator.New(store, svc, up), log), store, svc
}

func TestListRecipes_PrimesCacheOnMiss(t *testing.T) {
	a, store, svc := newApp(t)
	svc.EXPECT().ListRecipes(gomock.Any(), domain.Category("")).
		Return([]domain.Recipe{recipeA, recipeB}, nil)

	got, err := a.ListRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Recipe{recipeA, recipeB}, got)

	primed, ok := store.List(domain.ListKey())
	require.True(t, ok)
	assert.Equal(t, got, primed)

	// Second read is served from the cache; the single EXPECT above would
	// fail the test on another service call.
	again, err := a.ListRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestListRecipes_CategoryUsesOwnEntry(t *testing.T) {
	a, store, svc := newApp(t)
	svc.EXPECT().ListRecipes(gomock.Any(), domain.Category("dinner")).
		Return([]domain.Recipe{recipeA}, nil)

	got, err := a.ListRecipes(context.Background(), "dinner")
	require.NoError(t, err)
	assert.Equal(t, []domain.Recipe{recipeA}, got)

	_, ok := store.List(domain.ListKey())
	assert.False(t, ok, "the unfiltered entry stays cold")
	_, ok = store.List(domain.CategoryKey("dinner"))
	assert.True(t, ok)
}

func TestListRecipes_ErrorIsNotCached(t *testing.T) {
	a, store, svc := newApp(t)
	cause := &domain.ProblemDetails{Title: "Service unavailable", Status: 503}
	svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(nil, cause).Times(2)

	_, err := a.ListRecipes(context.Background(), "")
	var pd *domain.ProblemDetails
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, 503, pd.Status)

	_, ok := store.List(domain.ListKey())
	assert.False(t, ok)

	_, err = a.ListRecipes(context.Background(), "")
	require.Error(t, err)
}

func TestGetRecipe_PrimesDetailOnMiss(t *testing.T) {
	a, store, svc := newApp(t)
	svc.EXPECT().GetRecipe(gomock.Any(), "a").Return(recipeA, nil)

	got, err := a.GetRecipe(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, recipeA, got)

	primed, ok := store.Detail(domain.DetailKey("a"))
	require.True(t, ok)
	assert.Equal(t, recipeA, primed)

	again, err := a.GetRecipe(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, recipeA, again)
}

func TestSaveAndDelete_GoThroughTheMutationEngine(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		a, store, svc := newApp(t)
		created := domain.Recipe{ID: "server-1", Title: "Fondue", Servings: 4}
		svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
			Return([]domain.Recipe{created}, nil).AnyTimes()
		svc.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(created, nil)
		svc.EXPECT().DeleteRecipe(gomock.Any(), "server-1").Return(nil)

		got, err := a.SaveRecipe(context.Background(), mutator.SaveRequest{
			Recipe: domain.RecipeInput{Title: "Fondue", Servings: 4},
		})
		require.NoError(t, err)
		assert.Equal(t, created, got)
		synctest.Wait()

		detail, ok := store.Detail(domain.DetailKey("server-1"))
		require.True(t, ok)
		assert.Equal(t, created, detail)

		require.NoError(t, a.DeleteRecipe(context.Background(), "server-1"))
		synctest.Wait()

		_, ok = store.Detail(domain.DetailKey("server-1"))
		assert.False(t, ok)
	})
}

func TestSubscribe_FiresOnPrimedEntry(t *testing.T) {
	a, _, svc := newApp(t)
	svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
		Return([]domain.Recipe{recipeA}, nil)

	var notified atomic.Int32
	cancel := a.Subscribe(domain.ListKey(), func() { notified.Add(1) })
	defer cancel()

	_, err := a.ListRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), notified.Load())
}
