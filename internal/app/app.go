// Package app implements the application layer for pantry.
package app

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/engine/mutator"
	"go.trai.ch/zerr"
)

// App is the facade the CLI (and any embedding client) talks to. Reads are
// cache-first with read-through priming; writes go through the mutation
// engine so the cache always reflects the optimistic protocol.
type App struct {
	cache   ports.CacheStore
	service ports.RecipeService
	mutator *mutator.Mutator
	logger  ports.Logger
}

// New creates a new App instance.
func New(cache ports.CacheStore, service ports.RecipeService, mut *mutator.Mutator, logger ports.Logger) *App {
	return &App{
		cache:   cache,
		service: service,
		mutator: mut,
		logger:  logger,
	}
}

// ListRecipes returns the recipes for category (all recipes when empty),
// serving from the cache when an entry exists and priming it otherwise.
func (a *App) ListRecipes(ctx context.Context, category domain.Category) ([]domain.Recipe, error) {
	key := domain.ListKey()
	if category != "" {
		key = domain.CategoryKey(category)
	}
	if list, ok := a.cache.List(key); ok {
		a.logger.Debug("cache hit", "key", key.String())
		return list, nil
	}

	list, err := a.service.ListRecipes(ctx, category)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list recipes")
	}
	a.cache.SetList(key, list)
	return list, nil
}

// GetRecipe returns a single recipe, serving from the cache when a detail
// entry exists and priming it otherwise.
func (a *App) GetRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	key := domain.DetailKey(id)
	if r, ok := a.cache.Detail(key); ok {
		a.logger.Debug("cache hit", "key", key.String())
		return r, nil
	}

	r, err := a.service.GetRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, zerr.Wrap(err, "failed to get recipe")
	}
	a.cache.SetDetail(key, r)
	return r, nil
}

// SaveRecipe creates or updates a recipe through the optimistic mutation
// engine. The underlying transport or upload error is returned unchanged so
// callers can match the error taxonomy.
func (a *App) SaveRecipe(ctx context.Context, req mutator.SaveRequest) (domain.Recipe, error) {
	return a.mutator.SaveRecipe(ctx, req)
}

// DeleteRecipe removes a recipe through the optimistic mutation engine.
func (a *App) DeleteRecipe(ctx context.Context, id string) error {
	return a.mutator.DeleteRecipe(ctx, id)
}

// Subscribe registers fn to run whenever the cache entry at key changes.
func (a *App) Subscribe(key domain.Key, fn func()) (cancel func()) {
	return a.cache.Subscribe(key, fn)
}
