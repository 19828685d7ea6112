package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/rezeptblog/backend/config"
	"github.com/pageza/rezeptblog/backend/internal/api"
	"github.com/pageza/rezeptblog/backend/internal/content"
	"github.com/pageza/rezeptblog/backend/internal/database"
	"github.com/pageza/rezeptblog/backend/internal/middleware"
	"github.com/pageza/rezeptblog/backend/internal/ratelimit"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires the services and routes. redisClient may be nil, in which case views are
// de-duplicated in memory and POST endpoints are not rate limited.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, catalog *content.Catalog) *Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	var viewLimiter ratelimit.Limiter
	deps := api.Dependencies{
		Recipes: service.NewRecipeService(catalog),
		Ratings: service.NewRatingService(db, catalog),
		Admin:   service.NewAdminService(cfg.AdminPasswordHash, cfg.JWTSecret),
	}
	if redisClient != nil {
		viewLimiter = ratelimit.NewRedisLimiter(redisClient, cfg.ViewWindow, "recipe_views")
		deps.WriteLimiter = middleware.NewWriteRateLimiter(redisClient)
		deps.LoginLimiter = middleware.NewLoginRateLimiter(redisClient)
	} else {
		viewLimiter = ratelimit.NewMemoryLimiter(cfg.ViewWindow, 0, time.Now)
	}
	deps.Views = service.NewViewService(db, viewLimiter, catalog)

	s := &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:              cfg.ServerHost + ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	router.GET("/health", s.health)
	router.GET("/api/health", s.health)
	api.SetupAPI(router, deps)

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, s.db); err != nil {
		log.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
}

// Start listens on the configured address and blocks until the server is shut down.
// It returns nil after Shutdown, including when Shutdown ran first.
func (s *Server) Start() error {
	log.WithField("addr", s.http.Addr).Info("Starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
