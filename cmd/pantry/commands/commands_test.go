package commands_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/cmd/pantry/commands"
	"go.trai.ch/pantry/internal/adapters/cache"
	"go.trai.ch/pantry/internal/adapters/logger"
	"go.trai.ch/pantry/internal/app"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports/mocks"
	"go.trai.ch/pantry/internal/engine/mutator"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockRecipeService, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRecipeService(ctrl)
	up := mocks.NewMockImageUploader(ctrl)
	store := cache.New(svc, nil)
	log := logger.New()
	log.SetOutput(io.Discard)

	cli := commands.New(app.New(store, svc, mutator.New(store, svc, up), log))
	var out bytes.Buffer
	cli.SetOut(&out)
	return cli, svc, &out
}

func TestList(t *testing.T) {
	cli, svc, out := newCLI(t)
	svc.EXPECT().ListRecipes(gomock.Any(), domain.Category("")).
		Return([]domain.Recipe{
			{ID: "a", Title: "Älplermagronen", Servings: 4, Category: "dinner"},
			{ID: "b", Title: "Birchermüesli", Servings: 2},
		}, nil)

	cli.SetArgs([]string{"list"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "Älplermagronen")
	assert.Contains(t, out.String(), "dinner")
	assert.Contains(t, out.String(), "(serves 2)")
}

func TestList_CategoryFlag(t *testing.T) {
	cli, svc, out := newCLI(t)
	svc.EXPECT().ListRecipes(gomock.Any(), domain.Category("dessert")).
		Return(nil, nil)

	cli.SetArgs([]string{"list", "--category", "dessert"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "No recipes found.")
}

func TestGet(t *testing.T) {
	cli, svc, out := newCLI(t)
	svc.EXPECT().GetRecipe(gomock.Any(), "a").
		Return(domain.Recipe{
			ID:           "a",
			Title:        "Capuns",
			Servings:     4,
			Instructions: "Wrap the dough in chard leaves.",
		}, nil)

	cli.SetArgs([]string{"get", "a"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "Capuns")
	assert.Contains(t, out.String(), "Wrap the dough in chard leaves.")
}

func TestGet_ErrorSurfaces(t *testing.T) {
	cli, svc, _ := newCLI(t)
	svc.EXPECT().GetRecipe(gomock.Any(), "nope").
		Return(domain.Recipe{}, &domain.ProblemDetails{Title: "Not Found", Status: 404})

	cli.SetArgs([]string{"get", "nope"})
	err := cli.Execute(context.Background())
	var pd *domain.ProblemDetails
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, 404, pd.Status)
}

func TestSave_Create(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cli, svc, out := newCLI(t)
		created := domain.Recipe{ID: "server-1", Title: "Fondue", Servings: 4}
		svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
			Return([]domain.Recipe{created}, nil).AnyTimes()
		svc.EXPECT().
			CreateRecipe(gomock.Any(), domain.RecipeInput{Title: "Fondue", Servings: 4, Category: "dinner"}).
			Return(created, nil)

		cli.SetArgs([]string{"save", "--title", "Fondue", "--servings", "4", "--category", "dinner"})
		require.NoError(t, cli.Execute(context.Background()))
		synctest.Wait()

		assert.Contains(t, out.String(), "Saved Fondue (server-1)")
	})
}

func TestSave_Update(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cli, svc, out := newCLI(t)
		updated := domain.Recipe{ID: "a", Title: "Fondue moitié-moitié", Servings: 4}
		svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).
			Return([]domain.Recipe{updated}, nil).AnyTimes()
		svc.EXPECT().
			UpdateRecipe(gomock.Any(), "a", domain.RecipeInput{Title: "Fondue moitié-moitié", Servings: 4}).
			Return(updated, nil)

		cli.SetArgs([]string{"save", "--id", "a", "--title", "Fondue moitié-moitié", "--servings", "4"})
		require.NoError(t, cli.Execute(context.Background()))
		synctest.Wait()

		assert.Contains(t, out.String(), "Saved Fondue moitié-moitié (a)")
	})
}

func TestSave_MissingTitle(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"save", "--servings", "2"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestDelete(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cli, svc, out := newCLI(t)
		svc.EXPECT().ListRecipes(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		svc.EXPECT().DeleteRecipe(gomock.Any(), "a").Return(nil)

		cli.SetArgs([]string{"delete", "a"})
		require.NoError(t, cli.Execute(context.Background()))
		synctest.Wait()

		assert.Contains(t, out.String(), "Deleted a")
	})
}

func TestVersion(t *testing.T) {
	cli, _, out := newCLI(t)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "dev")
}
