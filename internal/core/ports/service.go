// Package ports defines the interfaces between the sync engine and its
// adapters.
package ports

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
)

// RecipeService is the remote source of truth for recipes.
//
//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type RecipeService interface {
	// ListRecipes returns all recipes, optionally filtered by category.
	// An empty category means no filter.
	ListRecipes(ctx context.Context, category domain.Category) ([]domain.Recipe, error)

	// GetRecipe returns a single recipe by identifier.
	GetRecipe(ctx context.Context, id string) (domain.Recipe, error)

	// CreateRecipe creates a recipe; id and createdAt are server-assigned.
	CreateRecipe(ctx context.Context, in domain.RecipeInput) (domain.Recipe, error)

	// UpdateRecipe replaces the recipe with the given identifier.
	UpdateRecipe(ctx context.Context, id string, in domain.RecipeInput) (domain.Recipe, error)

	// DeleteRecipe removes the recipe with the given identifier.
	DeleteRecipe(ctx context.Context, id string) error

	// CreateUploadToken requests a short-lived write credential for one
	// image upload.
	CreateUploadToken(ctx context.Context, req domain.UploadTokenRequest) (domain.UploadToken, error)
}
