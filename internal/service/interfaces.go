package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/related"
	"github.com/pageza/rezeptblog/backend/internal/types"
)

// RecipeLookup reports whether a recipe exists.
type RecipeLookup interface {
	Has(slug string) bool
}

// IRecipeService defines the read operations on the recipe collection
type IRecipeService interface {
	List(category string) []types.Recipe
	Get(slug string) (types.Recipe, error)
	Category(slug string) (*Category, error)
	Related(slug string, limit int) ([]types.Recipe, error)
	RelatedScores(slug string, limit int) ([]related.Result, error)
	Dietary(slug string) (*DietaryReport, error)
}

// IRatingService defines the interface for recipe rating operations
type IRatingService interface {
	Submit(ctx context.Context, slug string, value int, clientID string) (*models.Rating, error)
	Get(ctx context.Context, slug string) (*Aggregate, error)
	AggregateAll(ctx context.Context, since time.Time) (map[string]Aggregate, error)
	List(ctx context.Context, slug string) ([]models.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IViewService defines the interface for view counting
type IViewService interface {
	Track(ctx context.Context, slug, clientID, userAgent string) (*TrackResult, error)
	Popular(ctx context.Context, limit int) (*PopularResult, error)
}

// IAdminService defines the interface for the admin session
type IAdminService interface {
	Login(password string) (string, time.Time, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
