package service

import (
	"strings"

	"github.com/pageza/rezeptblog/backend/internal/content"
	"github.com/pageza/rezeptblog/backend/internal/dietary"
	"github.com/pageza/rezeptblog/backend/internal/related"
	"github.com/pageza/rezeptblog/backend/internal/types"
)

// Category is a category archive page.
type Category struct {
	Slug    string         `json:"slug"`
	Name    string         `json:"name"`
	URL     string         `json:"url"`
	Recipes []types.Recipe `json:"recipes"`
}

// Badge is a dietary label as shown on a recipe page.
type Badge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// DietaryReport describes the dietary properties of one recipe.
type DietaryReport struct {
	Slug      string              `json:"slug"`
	Labels    types.DietaryLabels `json:"labels"`
	Active    []string            `json:"active"`
	Badges    []Badge             `json:"badges"`
	SchemaOrg []string            `json:"schemaOrg"`
}

// RecipeService answers queries over the loaded recipe collection
type RecipeService struct {
	catalog *content.Catalog
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(catalog *content.Catalog) *RecipeService {
	return &RecipeService{catalog: catalog}
}

// List returns all recipes, or those filed under the category slug when one is given.
func (s *RecipeService) List(category string) []types.Recipe {
	if category = strings.TrimSpace(category); category != "" {
		return s.catalog.ByCategory(content.CategorySlug(category))
	}
	return s.catalog.All()
}

// Get retrieves a recipe by slug
func (s *RecipeService) Get(slug string) (types.Recipe, error) {
	return s.catalog.BySlug(slug)
}

// Category returns the archive page of a category slug.
func (s *RecipeService) Category(slug string) (*Category, error) {
	recipes := s.catalog.ByCategory(slug)
	if len(recipes) == 0 {
		return nil, ErrCategoryNotFound
	}
	return &Category{
		Slug:    slug,
		Name:    content.CategoryName(slug),
		URL:     "/kategorien/" + slug,
		Recipes: recipes,
	}, nil
}

// Related returns up to limit recipes ranked by similarity to the recipe.
func (s *RecipeService) Related(slug string, limit int) ([]types.Recipe, error) {
	current, err := s.catalog.BySlug(slug)
	if err != nil {
		return nil, err
	}
	return related.Rank(current, s.catalog.All(), limit), nil
}

// RelatedScores is Related with the score breakdown of each match.
func (s *RecipeService) RelatedScores(slug string, limit int) ([]related.Result, error) {
	current, err := s.catalog.BySlug(slug)
	if err != nil {
		return nil, err
	}
	return related.RankWithScores(current, s.catalog.All(), limit), nil
}

// Dietary classifies the recipe, preferring curated labels when they are verified.
func (s *RecipeService) Dietary(slug string) (*DietaryReport, error) {
	recipe, err := s.catalog.BySlug(slug)
	if err != nil {
		return nil, err
	}

	labels := dietary.Resolve(recipe)
	active := dietary.ActiveLabels(&labels)
	badges := make([]Badge, 0, len(active))
	for _, key := range active {
		d, _ := dietary.DisplayFor(key)
		badges = append(badges, Badge{Key: key, Label: d.Label, Color: d.Color})
	}

	return &DietaryReport{
		Slug:      slug,
		Labels:    labels,
		Active:    active,
		Badges:    badges,
		SchemaOrg: dietary.SchemaOrgDiets(labels),
	}, nil
}
