package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"github.com/pageza/rezeptblog/backend/config"
	"github.com/pageza/rezeptblog/backend/internal/content"
	"github.com/pageza/rezeptblog/backend/internal/database"
	"github.com/pageza/rezeptblog/backend/internal/logging"
	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

const batchSize = 50 // view rows written per insert

func main() {
	maxRatings := flag.Int("ratings", 8, "Maximum number of ratings per recipe")
	maxViews := flag.Int("views", 500, "Maximum view count per recipe")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == config.Production {
		log.Fatal("Refusing to seed demo data in production")
	}
	if err := logging.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	catalog, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		log.Fatalf("Failed to load recipes: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	rng := rand.New(rand.NewPCG(*seed, *seed))
	ratings := service.NewRatingService(db, catalog)

	var views []models.RecipeView
	submitted := 0
	for _, recipe := range catalog.All() {
		slug := recipe.Slug()

		// Skew towards good ratings like real visitors do
		n := rng.IntN(*maxRatings + 1)
		for i := 0; i < n; i++ {
			value := service.MaxRating - rng.IntN(3)
			_, err := ratings.Submit(ctx, slug, value, fmt.Sprintf("seed-visitor-%d", i))
			if errors.Is(err, service.ErrAlreadyRated) {
				continue
			}
			if err != nil {
				log.Fatalf("Failed to rate %s: %v", slug, err)
			}
			submitted++
		}

		views = append(views, models.RecipeView{Slug: slug, Views: int64(rng.IntN(*maxViews + 1))})
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"views", "updated_at"}),
		}).
		CreateInBatches(views, batchSize).Error; err != nil {
		log.Fatalf("Failed to seed view counts: %v", err)
	}

	log.WithFields(log.Fields{"recipes": catalog.Len(), "ratings": submitted}).Info("Seeded demo data")
}
