package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/config"
	"github.com/pageza/rezeptblog/backend/internal/database"
	"github.com/pageza/rezeptblog/backend/internal/logging"
)

func main() {
	migrationsDir := flag.String("dir", "", "Directory holding the SQL migrations (default MIGRATIONS_DIR)")
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

	dir := cfg.MigrationsDir
	if *migrationsDir != "" {
		dir = *migrationsDir
	}
	if err := database.RunMigrations(db, dir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Info("All migrations applied successfully")
}
