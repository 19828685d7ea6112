// Package api exposes the recipe, rating, view and admin HTTP endpoints.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/rezeptblog/backend/internal/middleware"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// Dependencies are the services behind the API. The limiters are optional.
type Dependencies struct {
	Recipes      service.IRecipeService
	Ratings      service.IRatingService
	Views        service.IViewService
	Admin        service.IAdminService
	WriteLimiter *middleware.RateLimiter
	LoginLimiter *middleware.RateLimiter
}

// SetupAPI registers every handler under /api/v1.
func SetupAPI(router *gin.Engine, deps Dependencies) {
	v1 := router.Group("/api/v1")
	{
		NewRecipeHandler(deps.Recipes).RegisterRoutes(v1)
		NewRatingHandler(deps.Ratings, deps.WriteLimiter).RegisterRoutes(v1)
		NewViewHandler(deps.Views, deps.WriteLimiter).RegisterRoutes(v1)
		NewAdminHandler(deps.Admin, deps.Ratings, deps.LoginLimiter).RegisterRoutes(v1)
	}
}

// limited prepends the rate limit middleware to h when a limiter is configured.
func limited(rl *middleware.RateLimiter, h gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{rl.RateLimitMiddleware(), h}
}
