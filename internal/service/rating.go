package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/rezeptblog/backend/internal/models"
)

// MinRating and MaxRating bound a star rating.
const (
	MinRating = 1
	MaxRating = 5
)

// Aggregate summarizes the ratings of one recipe.
type Aggregate struct {
	AverageRating float64        `json:"averageRating"`
	TotalRatings  int            `json:"totalRatings"`
	Ratings       map[string]int `json:"ratings"`

	sum int
}

func newAggregate() Aggregate {
	counts := make(map[string]int, MaxRating)
	for v := MinRating; v <= MaxRating; v++ {
		counts[strconv.Itoa(v)] = 0
	}
	return Aggregate{Ratings: counts}
}

// add folds count ratings of value into the aggregate.
func (a *Aggregate) add(value, count int) {
	a.sum += value * count
	a.TotalRatings += count
	a.Ratings[strconv.Itoa(value)] += count
	if a.TotalRatings > 0 {
		a.AverageRating = float64(a.sum) / float64(a.TotalRatings)
	}
}

// UserHash identifies a visitor per recipe without storing their address.
func UserHash(clientID, slug string) string {
	sum := sha256.Sum256([]byte(clientID + slug))
	return hex.EncodeToString(sum[:])
}

// RatingService stores and aggregates recipe ratings
type RatingService struct {
	db      *gorm.DB
	recipes RecipeLookup
}

// NewRatingService creates a RatingService. When recipes is nil any slug is accepted.
func NewRatingService(db *gorm.DB, recipes RecipeLookup) *RatingService {
	return &RatingService{db: db, recipes: recipes}
}

// Submit records a rating. Each visitor can rate a recipe once.
func (s *RatingService) Submit(ctx context.Context, slug string, value int, clientID string) (*models.Rating, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrInvalidSlug
	}
	if value < MinRating || value > MaxRating {
		return nil, ErrInvalidRating
	}
	if s.recipes != nil && !s.recipes.Has(slug) {
		return nil, ErrRecipeNotFound
	}

	hash := UserHash(clientID, slug)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Where("recipe_slug = ? AND user_hash = ?", slug, hash).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyRated
	}

	rating := &models.Rating{RecipeSlug: slug, Value: value, UserHash: hash}
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		// A concurrent submission won the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRated
		}
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	log.WithFields(log.Fields{"slug": slug, "rating": value}).Info("Rating saved")
	return rating, nil
}

type ratingCount struct {
	RecipeSlug string
	Value      int
	Count      int
}

func (s *RatingService) counts(ctx context.Context, slug string, since time.Time) ([]ratingCount, error) {
	q := s.db.WithContext(ctx).Model(&models.Rating{}).
		Select("recipe_slug, value, COUNT(*) AS count")
	if slug != "" {
		q = q.Where("recipe_slug = ?", slug)
	}
	if !since.IsZero() {
		q = q.Where("created_at > ?", since)
	}

	var rows []ratingCount
	if err := q.Group("recipe_slug, value").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}
	return rows, nil
}

// Get returns the rating summary of a recipe. Unrated recipes have a zero summary.
func (s *RatingService) Get(ctx context.Context, slug string) (*Aggregate, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrInvalidSlug
	}
	rows, err := s.counts(ctx, slug, time.Time{})
	if err != nil {
		return nil, err
	}

	agg := newAggregate()
	for _, r := range rows {
		agg.add(r.Value, r.Count)
	}
	return &agg, nil
}

// AggregateAll summarizes every rated recipe, counting only ratings newer than since
// unless since is zero.
func (s *RatingService) AggregateAll(ctx context.Context, since time.Time) (map[string]Aggregate, error) {
	rows, err := s.counts(ctx, "", since)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Aggregate)
	for _, r := range rows {
		agg, ok := out[r.RecipeSlug]
		if !ok {
			agg = newAggregate()
		}
		agg.add(r.Value, r.Count)
		out[r.RecipeSlug] = agg
	}
	return out, nil
}

// List returns the ratings of a recipe, newest first.
func (s *RatingService) List(ctx context.Context, slug string) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if err := s.db.WithContext(ctx).
		Where("recipe_slug = ?", slug).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// Delete removes a single rating.
func (s *RatingService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete rating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	log.WithField("id", id).Info("Rating deleted")
	return nil
}
