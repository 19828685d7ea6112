package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/rezeptblog/backend/internal/middleware"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// SubmitRatingRequest is the body of POST /ratings.
type SubmitRatingRequest struct {
	RecipeSlug string `json:"recipeSlug"`
	Rating     *int   `json:"rating"`
}

type RatingHandler struct {
	ratings service.IRatingService
	limiter *middleware.RateLimiter
}

func NewRatingHandler(ratings service.IRatingService, limiter *middleware.RateLimiter) *RatingHandler {
	return &RatingHandler{ratings: ratings, limiter: limiter}
}

func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ratings", limited(h.limiter, h.SubmitRating)...)
	router.GET("/ratings", h.GetRating)
}

func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.RecipeSlug) == "" || req.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRatingMissing})
		return
	}

	rating, err := h.ratings.Submit(c.Request.Context(), req.RecipeSlug, *req.Rating, middleware.ClientID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgRatingSaved,
		"rating":  rating,
	})
}

func (h *RatingHandler) GetRating(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("recipeSlug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSlugRequired})
		return
	}

	agg, err := h.ratings.Get(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=60, s-maxage=60, stale-while-revalidate=300")
	c.JSON(http.StatusOK, agg)
}
