// Package domain defines the core entities for the pantry sync engine.
// All other packages depend on domain; domain depends on nothing internal.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TempIDPrefix marks client-synthesized identifiers for recipes that have
// not yet been assigned a server identifier.
const TempIDPrefix = "temp-"

// Category is an optional enumerated label attached to a recipe.
type Category string

// Recipe is the domain entity as served by the recipe service.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions,omitempty"`
	Servings     int       `json:"servings"`
	Category     Category  `json:"category,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UserID       string    `json:"userId,omitempty"`
}

// RecipeInput is the client-supplied request shape for create and update.
type RecipeInput struct {
	Title        string   `json:"title"`
	Instructions string   `json:"instructions,omitempty"`
	Servings     int      `json:"servings"`
	Category     Category `json:"category,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	UserID       string   `json:"userId,omitempty"`
}

// Validate checks the invariants the service enforces server-side so that
// obviously bad payloads never leave the client.
func (in RecipeInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if in.Servings <= 0 {
		return ErrInvalidServings
	}
	return nil
}

// Placeholder materializes the input as an optimistic recipe under a
// temporary identifier, stamped with the current time.
func (in RecipeInput) Placeholder(tempID string, now time.Time) Recipe {
	userID := in.UserID
	if userID == "" {
		userID = "pending"
	}
	return Recipe{
		ID:           tempID,
		Title:        in.Title,
		Instructions: in.Instructions,
		Servings:     in.Servings,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UserID:       userID,
	}
}

// MergeInto overlays the input's fields onto an existing recipe, preserving
// server-assigned fields (identifier, creation time).
func (in RecipeInput) MergeInto(r Recipe) Recipe {
	r.Title = in.Title
	r.Instructions = in.Instructions
	r.Servings = in.Servings
	r.Category = in.Category
	if in.ImageURL != "" {
		r.ImageURL = in.ImageURL
	}
	if in.UserID != "" {
		r.UserID = in.UserID
	}
	return r
}

// NewTempID synthesizes a temporary recipe identifier.
func NewTempID() string {
	return TempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id is a client-synthesized placeholder.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}
