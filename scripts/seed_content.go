package main

import (
	"context"
	"fmt"
	"log"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Applies migrations and writes the built-in portfolio content.
// Run from the repository root: go run ./scripts
func main() {
	fmt.Println("seeding portfolio content into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if cfg.DB.DSN == "" {
		log.Fatal("DB_DSN is not set")
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if err := persistence.Migrate(persistence.DefaultMigrationsURL, cfg.DB.DSN, appLogger); err != nil {
		appLogger.Fatal("Migration failed", err)
	}

	ctx := context.Background()
	pool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer pool.Close()

	if err := persistence.SeedContent(ctx, pool, appLogger); err != nil {
		appLogger.Fatal("Seeding failed", err)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unreachable, cached content left to expire")
			return
		}
		defer rdb.Close()
		if err := persistence.InvalidateContent(ctx, rdb); err != nil {
			appLogger.Error("Failed to invalidate cached content", err)
		}
	}

	fmt.Println("portfolio content seeded.")
}
