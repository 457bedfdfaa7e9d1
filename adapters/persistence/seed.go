package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.uber.org/zap"
)

// SeedContent writes the built-in profile, projects and technologies into
// the database, replacing whatever content is there.
func SeedContent(ctx context.Context, db *pgxpool.Pool, log logger.Logger) error {
	if err := NewPostgresProfileRepo(db, log).Upsert(ctx, SeedProfile()); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	projects := SeedProjects()
	if err := NewPostgresProjectRepo(db, log).ReplaceAll(ctx, projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	techs := SeedTechnologies()
	if err := NewPostgresTechnologyRepo(db, log).ReplaceAll(ctx, techs); err != nil {
		return fmt.Errorf("seed technologies: %w", err)
	}

	log.Info("Seeded portfolio content", zap.Int("projects", len(projects)), zap.Int("technologies", len(techs)))
	return nil
}
