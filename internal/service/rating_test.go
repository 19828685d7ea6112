package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/service"
	"github.com/pageza/rezeptblog/backend/internal/testhelpers"
)

func newRatingService(t *testing.T) *service.RatingService {
	t.Helper()
	return service.NewRatingService(testhelpers.SetupSQLiteDB(t), testhelpers.SampleCatalog(t))
}

func TestUserHash(t *testing.T) {
	sum := sha256.Sum256([]byte("1.2.3.4lasagne"))
	assert.Equal(t, hex.EncodeToString(sum[:]), service.UserHash("1.2.3.4", "lasagne"))
	assert.NotEqual(t, service.UserHash("1.2.3.4", "lasagne"), service.UserHash("1.2.3.4", "apfelkuchen"))
}

func TestSubmitRating(t *testing.T) {
	svc := newRatingService(t)
	ctx := context.Background()

	rating, err := svc.Submit(ctx, "lasagne", 5, "1.2.3.4")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.Equal(t, 5, rating.Value)
	assert.Equal(t, service.UserHash("1.2.3.4", "lasagne"), rating.UserHash)

	_, err = svc.Submit(ctx, "lasagne", 1, "1.2.3.4")
	assert.ErrorIs(t, err, service.ErrAlreadyRated)

	_, err = svc.Submit(ctx, "lasagne", 3, "5.6.7.8")
	assert.NoError(t, err)

	_, err = svc.Submit(ctx, "apfelkuchen", 4, "1.2.3.4")
	assert.NoError(t, err, "the same visitor can rate other recipes")
}

func TestSubmitRatingValidation(t *testing.T) {
	svc := newRatingService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		slug  string
		value int
		want  error
	}{
		{"blank slug", "  ", 3, service.ErrInvalidSlug},
		{"zero", "lasagne", 0, service.ErrInvalidRating},
		{"six", "lasagne", 6, service.ErrInvalidRating},
		{"negative", "lasagne", -1, service.ErrInvalidRating},
		{"unknown recipe", "pizza", 3, service.ErrRecipeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.slug, tt.value, "1.2.3.4")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmitRatingConcurrentSameVisitor(t *testing.T) {
	svc := newRatingService(t)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, "lasagne", 4, "1.2.3.4")
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, service.ErrAlreadyRated)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)
}

func TestGetRatingWithoutRatings(t *testing.T) {
	svc := newRatingService(t)

	agg, err := svc.Get(context.Background(), "lasagne")
	require.NoError(t, err)
	assert.Zero(t, agg.AverageRating)
	assert.Zero(t, agg.TotalRatings)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, agg.Ratings)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidSlug)
}

func TestGetRatingAggregates(t *testing.T) {
	svc := newRatingService(t)
	ctx := context.Background()

	for i, v := range []int{5, 4, 4} {
		_, err := svc.Submit(ctx, "lasagne", v, fmt.Sprintf("10.0.0.%d", i))
		require.NoError(t, err)
	}
	_, err := svc.Submit(ctx, "apfelkuchen", 1, "10.0.0.1")
	require.NoError(t, err)

	agg, err := svc.Get(ctx, "lasagne")
	require.NoError(t, err)
	assert.Equal(t, 3, agg.TotalRatings)
	assert.InDelta(t, 13.0/3.0, agg.AverageRating, 1e-9)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 2, "5": 1}, agg.Ratings)
}

func TestAggregateAllSince(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRatingService(db, nil)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ratings := []models.Rating{
		{RecipeSlug: "lasagne", Value: 5, UserHash: "a", CreatedAt: now.AddDate(0, -1, 0)},
		{RecipeSlug: "lasagne", Value: 3, UserHash: "b", CreatedAt: now.AddDate(0, -2, 0)},
		{RecipeSlug: "lasagne", Value: 1, UserHash: "c", CreatedAt: now.AddDate(-2, 0, 0)},
		{RecipeSlug: "tiramisu", Value: 2, UserHash: "a", CreatedAt: now.AddDate(-2, 0, 0)},
	}
	require.NoError(t, db.Create(&ratings).Error)

	all, err := svc.AggregateAll(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 3, all["lasagne"].TotalRatings)
	assert.InDelta(t, 3.0, all["lasagne"].AverageRating, 1e-9)

	recent, err := svc.AggregateAll(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	require.Len(t, recent, 1, "recipes with only old ratings are left out")
	assert.Equal(t, 2, recent["lasagne"].TotalRatings)
	assert.InDelta(t, 4.0, recent["lasagne"].AverageRating, 1e-9)
	assert.Equal(t, 1, recent["lasagne"].Ratings["5"])
	assert.Equal(t, 1, recent["lasagne"].Ratings["3"])
}

func TestListAndDeleteRatings(t *testing.T) {
	svc := newRatingService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "lasagne", 5, "10.0.0.1")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "lasagne", 2, "10.0.0.2")
	require.NoError(t, err)

	list, err := svc.List(ctx, "lasagne")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := svc.List(ctx, "apfelkuchen")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), service.ErrRatingNotFound)

	agg, err := svc.Get(ctx, "lasagne")
	require.NoError(t, err)
	assert.Equal(t, 1, agg.TotalRatings)
	assert.Equal(t, 1, agg.Ratings["2"])

	// The visitor can rate again once their rating was removed.
	_, err = svc.Submit(ctx, "lasagne", 4, "10.0.0.1")
	assert.NoError(t, err)
}
