package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/config"
	"github.com/pageza/rezeptblog/backend/internal/database"
	"github.com/pageza/rezeptblog/backend/internal/export"
	"github.com/pageza/rezeptblog/backend/internal/logging"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

func main() {
	outDir := flag.String("out", "src/data/ratings", "Directory to write the rating summaries to")
	maxAge := flag.Duration("since", export.RatingsMaxAge, "Only count ratings newer than this")
	public := flag.Bool("public", false, "Make the uploaded summaries publicly readable")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logging.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	var uploader export.Uploader
	if cfg.S3BucketName != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		if *public {
			if err := s3cfg.SetupBucketPolicy(ctx, "ratings/"); err != nil {
				log.Fatalf("Failed to set bucket policy: %v", err)
			}
		}
		uploader = s3cfg
	}

	// Existence checks are skipped so ratings of renamed recipes still export
	ratings := service.NewRatingService(db, nil)
	exporter := export.NewRatingsExporter(ratings, *outDir, uploader)

	exported, err := exporter.Export(ctx, time.Now().Add(-*maxAge))
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.WithField("recipes", len(exported)).Info("Rating aggregation complete")
}
