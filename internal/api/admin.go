package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/internal/middleware"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AdminHandler serves the moderation endpoints.
type AdminHandler struct {
	admin   service.IAdminService
	ratings service.IRatingService
	limiter *middleware.RateLimiter
}

func NewAdminHandler(admin service.IAdminService, ratings service.IRatingService, limiter *middleware.RateLimiter) *AdminHandler {
	return &AdminHandler{admin: admin, ratings: ratings, limiter: limiter}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.POST("/login", limited(h.limiter, h.Login)...)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(h.admin))
	{
		protected.GET("/ratings/:slug", h.ListRatings)
		protected.DELETE("/ratings/:id", h.DeleteRating)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	token, expiresAt, err := h.admin.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.WithField("client", middleware.ClientID(c)).Warn("Failed admin login")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()})
}

func (h *AdminHandler) ListRatings(c *gin.Context) {
	slug := c.Param("slug")
	ratings, err := h.ratings.List(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.ratings.Get(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"summary": summary,
	})
}

func (h *AdminHandler) DeleteRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating id"})
		return
	}

	if err := h.ratings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	log.WithFields(log.Fields{"id": id, "subject": c.GetString(middleware.ContextKeySubject)}).Info("Rating removed by admin")
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}
