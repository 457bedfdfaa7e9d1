package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type PostgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) *PostgresProjectRepo {
	return &PostgresProjectRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, title, description, technologies, github_url, demo_url, image_url"

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Technologies,
		&p.GitHubURL,
		&p.DemoURL,
		&p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, nil
}

func (r *PostgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	sql, args, err := psql.Select(projectColumns).
		From("projects").
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *PostgresProjectRepo) FindByID(ctx context.Context, id string) (*project.Project, error) {
	sql, args, err := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find project query", err)
	}

	p, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", id)
		}
		return nil, err
	}
	return p, nil
}

// ReplaceAll rewrites the project table so that it holds exactly projects,
// in the given order.
func (r *PostgresProjectRepo) ReplaceAll(ctx context.Context, projects []*project.Project) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin project transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
		return apperror.NewInternal("failed to clear projects", err)
	}

	if len(projects) > 0 {
		insert := psql.Insert("projects").
			Columns("id", "position", "title", "description", "technologies", "github_url", "demo_url", "image_url")
		for i, p := range projects {
			if err := p.Validate(); err != nil {
				return apperror.NewInvalidInput(p.ID, err)
			}
			insert = insert.Values(p.ID, i, p.Title, p.Description, p.Technologies, p.GitHubURL, p.DemoURL, p.ImageURL)
		}
		sql, args, err := insert.ToSql()
		if err != nil {
			return apperror.NewInternal("failed to build insert projects query", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return apperror.NewInternal("failed to insert projects", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit projects", err)
	}
	return nil
}
