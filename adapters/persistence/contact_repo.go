package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Body, m.ReceivedAt)
	if err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}
