package service

import (
	"errors"

	"github.com/pageza/rezeptblog/backend/internal/content"
)

var (
	// ErrRecipeNotFound is returned when no recipe has the requested slug.
	ErrRecipeNotFound = content.ErrRecipeNotFound
	// ErrCategoryNotFound is returned when no recipe is filed under a category.
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	// ErrAlreadyRated is returned when a visitor rates the same recipe twice.
	ErrAlreadyRated       = errors.New("recipe already rated")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 50")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
