package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/internal/service"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidLimit  = "Limit must be between 1 and 50"
	msgAlreadyRated  = "Du hast dieses Rezept bereits bewertet."
	msgRatingSaved   = "Bewertung erfolgreich gespeichert"
	msgRatingMissing = "Recipe slug and rating are required"
	msgSlugRequired  = "Recipe slug is required"
)

// respondError writes the JSON error response for a service error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case errors.Is(err, service.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
	case errors.Is(err, service.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSlugRequired})
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer between 1 and 5"})
	case errors.Is(err, service.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidLimit})
	case errors.Is(err, service.ErrAlreadyRated):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msgAlreadyRated})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// queryLimit reads the limit query parameter. It writes a 400 response and returns
// false when the value is not an integer in 1..service.MaxPopularLimit.
func queryLimit(c *gin.Context, def int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > service.MaxPopularLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidLimit})
		return 0, false
	}
	return limit, true
}
