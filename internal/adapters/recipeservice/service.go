// Package recipeservice implements the typed REST client for the recipe
// service, layered on the transport client.
package recipeservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.trai.ch/pantry/internal/adapters/transport"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service implements ports.RecipeService against a REST endpoint.
type Service struct {
	client  *transport.Client
	baseURL string
}

// New creates a Service rooted at baseURL (no trailing slash).
func New(client *transport.Client, baseURL string) *Service {
	return &Service{client: client, baseURL: baseURL}
}

// ListRecipes returns all recipes, optionally filtered by category.
func (s *Service) ListRecipes(ctx context.Context, category domain.Category) ([]domain.Recipe, error) {
	path := "/recipes"
	if category != "" {
		path += "?category=" + url.QueryEscape(string(category))
	}
	var out []domain.Recipe
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipe returns a single recipe by identifier.
func (s *Service) GetRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	var out domain.Recipe
	if err := s.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.Recipe{}, err
	}
	return out, nil
}

// CreateRecipe creates a recipe; id and createdAt come back server-assigned.
func (s *Service) CreateRecipe(ctx context.Context, in domain.RecipeInput) (domain.Recipe, error) {
	var out domain.Recipe
	if err := s.do(ctx, http.MethodPost, "/recipes", in, &out); err != nil {
		return domain.Recipe{}, err
	}
	return out, nil
}

// UpdateRecipe replaces the recipe with the given identifier.
func (s *Service) UpdateRecipe(ctx context.Context, id string, in domain.RecipeInput) (domain.Recipe, error) {
	var out domain.Recipe
	if err := s.do(ctx, http.MethodPut, "/recipes/"+url.PathEscape(id), in, &out); err != nil {
		return domain.Recipe{}, err
	}
	return out, nil
}

// DeleteRecipe removes the recipe with the given identifier.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/recipes/"+url.PathEscape(id), nil, nil)
}

// CreateUploadToken requests a short-lived write credential for one image.
func (s *Service) CreateUploadToken(ctx context.Context, req domain.UploadTokenRequest) (domain.UploadToken, error) {
	var out domain.UploadToken
	if err := s.do(ctx, http.MethodPost, "/recipes/upload-token", req, &out); err != nil {
		return domain.UploadToken{}, err
	}
	return out, nil
}

func (s *Service) do(ctx context.Context, method, path string, in, out any) error {
	opts := transport.RequestOptions{Method: method}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return zerr.Wrap(err, "failed to encode request body")
		}
		opts.Body = body
	}

	resp, err := s.client.Request(ctx, s.baseURL+path, opts)
	if err != nil {
		return err
	}
	return transport.Parse(resp, out)
}

var _ ports.RecipeService = (*Service)(nil)
