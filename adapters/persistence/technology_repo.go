package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type PostgresTechnologyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTechnologyRepo(db *pgxpool.Pool, logger logger.Logger) *PostgresTechnologyRepo {
	return &PostgresTechnologyRepo{db: db, logger: logger}
}

func (r *PostgresTechnologyRepo) List(ctx context.Context) ([]technology.Technology, error) {
	sql, args, err := psql.Select("name, category, level").
		From("technologies").
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list technologies query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query technologies", err)
	}
	defer rows.Close()

	techs := make([]technology.Technology, 0)
	for rows.Next() {
		var t technology.Technology
		if err := rows.Scan(&t.Name, &t.Category, &t.Level); err != nil {
			return nil, apperror.NewInternal("failed to scan technology row", err)
		}
		techs = append(techs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating technology rows", err)
	}
	return techs, nil
}

func (r *PostgresTechnologyRepo) ReplaceAll(ctx context.Context, techs []technology.Technology) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin technology transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM technologies`); err != nil {
		return apperror.NewInternal("failed to clear technologies", err)
	}

	if len(techs) > 0 {
		insert := psql.Insert("technologies").Columns("name", "position", "category", "level")
		for i, t := range techs {
			insert = insert.Values(t.Name, i, t.Category, t.Level)
		}
		sql, args, err := insert.ToSql()
		if err != nil {
			return apperror.NewInternal("failed to build insert technologies query", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return apperror.NewInternal("failed to insert technologies", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit technologies", err)
	}
	return nil
}
