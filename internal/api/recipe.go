package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/rezeptblog/backend/internal/related"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:slug", h.GetRecipe)
		recipes.GET("/:slug/related", h.RelatedRecipes)
		recipes.GET("/:slug/related/scores", h.RelatedScores)
		recipes.GET("/:slug/dietary", h.Dietary)
	}
	router.GET("/categories/:slug", h.GetCategory)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes := h.recipes.List(c.Query("category"))
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   len(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) RelatedRecipes(c *gin.Context) {
	limit, ok := queryLimit(c, related.DefaultLimit)
	if !ok {
		return
	}
	recipes, err := h.recipes.Related(c.Param("slug"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// RelatedScores is RelatedRecipes with the per-signal score of each match.
func (h *RecipeHandler) RelatedScores(c *gin.Context) {
	limit, ok := queryLimit(c, related.DefaultLimit)
	if !ok {
		return
	}
	results, err := h.recipes.RelatedScores(c.Param("slug"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *RecipeHandler) Dietary(c *gin.Context) {
	report, err := h.recipes.Dietary(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *RecipeHandler) GetCategory(c *gin.Context) {
	category, err := h.recipes.Category(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
