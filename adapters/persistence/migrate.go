package persistence

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/logger"
)

// DefaultMigrationsURL is relative to the repository root.
const DefaultMigrationsURL = "file://migrations"

// Migrate applies every pending up migration from sourceURL to dsn.
func Migrate(sourceURL, dsn string, log logger.Logger) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("Applied database migrations", zap.Uint("version", version))
	return nil
}
