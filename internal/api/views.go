package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/rezeptblog/backend/internal/middleware"
	"github.com/pageza/rezeptblog/backend/internal/related"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// TrackViewRequest is the body of POST /track-view.
type TrackViewRequest struct {
	Slug string `json:"slug"`
}

type ViewHandler struct {
	views   service.IViewService
	limiter *middleware.RateLimiter
}

func NewViewHandler(views service.IViewService, limiter *middleware.RateLimiter) *ViewHandler {
	return &ViewHandler{views: views, limiter: limiter}
}

func (h *ViewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/track-view", limited(h.limiter, h.TrackView)...)
	router.GET("/popular-recipes", h.PopularRecipes)
}

func (h *ViewHandler) TrackView(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")

	var req TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	result, err := h.views.Track(c.Request.Context(), req.Slug, middleware.ClientID(c), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ViewHandler) PopularRecipes(c *gin.Context) {
	limit, ok := queryLimit(c, related.DefaultLimit)
	if !ok {
		return
	}

	result, err := h.views.Popular(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300, s-maxage=300")
	c.Header("CDN-Cache-Control", "max-age=300")
	c.JSON(http.StatusOK, result)
}
