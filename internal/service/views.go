package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/ratelimit"
)

// Reasons a view was not counted.
const (
	ReasonBot         = "bot"
	ReasonRateLimited = "rate_limited"
)

// MaxPopularLimit caps the size of the popular recipes list.
const MaxPopularLimit = 50

var botUserAgent = regexp.MustCompile(`(?i)bot|crawler|spider|scraper`)

// TrackResult is the outcome of one view event.
type TrackResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Views   int64  `json:"views,omitempty"`
}

// PopularRecipe is a recipe slug with its view count.
type PopularRecipe struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

// PopularResult lists the most viewed recipes.
type PopularResult struct {
	Success bool            `json:"success"`
	Recipes []PopularRecipe `json:"recipes"`
	Total   int64           `json:"total"`
}

// ViewService counts recipe page views
type ViewService struct {
	db      *gorm.DB
	limiter ratelimit.Limiter
	recipes RecipeLookup
}

// NewViewService creates a ViewService. Repeated views of a recipe by one client are
// dropped while limiter rejects them. When recipes is nil any slug is counted.
func NewViewService(db *gorm.DB, limiter ratelimit.Limiter, recipes RecipeLookup) *ViewService {
	return &ViewService{db: db, limiter: limiter, recipes: recipes}
}

// Track counts a view unless it comes from a bot or repeats within the window.
func (s *ViewService) Track(ctx context.Context, slug, clientID, userAgent string) (*TrackResult, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrInvalidSlug
	}
	if s.recipes != nil && !s.recipes.Has(slug) {
		return nil, ErrRecipeNotFound
	}

	if botUserAgent.MatchString(userAgent) {
		return &TrackResult{Success: false, Reason: ReasonBot}, nil
	}

	allowed, err := s.limiter.Allow(ctx, ratelimit.Key(slug, clientID))
	if err != nil {
		// Count the view rather than lose it when the window store is down.
		log.WithError(err).WithField("slug", slug).Warn("View de-duplication failed")
		allowed = true
	}
	if !allowed {
		return &TrackResult{Success: false, Reason: ReasonRateLimited}, nil
	}

	views, err := s.increment(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &TrackResult{Success: true, Slug: slug, Views: views}, nil
}

func (s *ViewService) increment(ctx context.Context, slug string) (int64, error) {
	var view models.RecipeView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"views":      gorm.Expr("recipe_views.views + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(&models.RecipeView{Slug: slug, Views: 1}).Error
		if err != nil {
			return err
		}
		return tx.First(&view, "slug = ?", slug).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}
	return view.Views, nil
}

// Popular returns the limit most viewed recipes and the number of recipes with any views.
func (s *ViewService) Popular(ctx context.Context, limit int) (*PopularResult, error) {
	if limit < 1 || limit > MaxPopularLimit {
		return nil, ErrInvalidLimit
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.RecipeView{}).
		Where("views > 0").
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count viewed recipes: %w", err)
	}

	recipes := []PopularRecipe{}
	if err := s.db.WithContext(ctx).Model(&models.RecipeView{}).
		Where("views > 0").
		Order("views DESC").
		Order("slug ASC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list popular recipes: %w", err)
	}

	return &PopularResult{Success: true, Recipes: recipes, Total: total}, nil
}
