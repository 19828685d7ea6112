// Package content loads the recipe collection from the content directory.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

// ErrRecipeNotFound is returned when no recipe has the requested slug.
var ErrRecipeNotFound = errors.New("recipe not found")

// Catalog is an immutable, slug-indexed recipe collection.
type Catalog struct {
	recipes []types.Recipe
	bySlug  map[string]int
}

// NewCatalog indexes recipes by slug. Recipes are ordered newest first, then by slug.
func NewCatalog(recipes []types.Recipe) (*Catalog, error) {
	sorted := slices.Clone(recipes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Metadata.PubDate, sorted[j].Metadata.PubDate
		if !a.Equal(b.Time) {
			return a.After(b.Time)
		}
		return sorted[i].Slug() < sorted[j].Slug()
	})

	c := &Catalog{recipes: sorted, bySlug: make(map[string]int, len(sorted))}
	for i, r := range sorted {
		slug := r.Slug()
		if slug == "" {
			return nil, fmt.Errorf("recipe %q has no slug", r.Title())
		}
		if _, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("duplicate recipe slug %q", slug)
		}
		c.bySlug[slug] = i
	}
	return c, nil
}

// LoadDir reads every .json, .yaml and .yml file in dir as one recipe.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	var recipes []types.Recipe
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		r, ok, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		recipes = append(recipes, r)
	}

	c, err := NewCatalog(recipes)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"dir": dir, "recipes": c.Len()}).Info("Loaded recipe content")
	return c, nil
}

func loadFile(path string) (types.Recipe, bool, error) {
	var r types.Recipe
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return r, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return r, false, fmt.Errorf("failed to read recipe file %s: %w", path, err)
	}

	if ext == ".json" {
		err = json.Unmarshal(data, &r)
	} else {
		err = yaml.Unmarshal(data, &r)
	}
	if err != nil {
		return r, false, fmt.Errorf("failed to parse recipe file %s: %w", path, err)
	}
	if r.Slug() == "" {
		return r, false, fmt.Errorf("recipe file %s has no metadata.slug", path)
	}
	return r, true, nil
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// All returns a copy of every recipe, newest first.
func (c *Catalog) All() []types.Recipe {
	return slices.Clone(c.recipes)
}

// BySlug looks up a recipe.
func (c *Catalog) BySlug(slug string) (types.Recipe, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return types.Recipe{}, ErrRecipeNotFound
	}
	return c.recipes[i], nil
}

// Has reports whether a recipe with the slug exists.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}

// ByCategory returns the recipes filed under the category with the given URL slug.
func (c *Catalog) ByCategory(categorySlug string) []types.Recipe {
	matches := []types.Recipe{}
	for _, r := range c.recipes {
		if slices.ContainsFunc(r.Categories(), func(cat string) bool {
			return CategorySlug(cat) == categorySlug
		}) {
			matches = append(matches, r)
		}
	}
	return matches
}
