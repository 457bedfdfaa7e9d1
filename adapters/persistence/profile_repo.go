package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// The profiles table holds a single row keyed by id = 1.
const profileRowID = 1

type PostgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db, logger: logger}
}

func (r *PostgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT name, title, bio, photo_url, resume_url, contact
		FROM profiles
		WHERE id = $1
	`
	p := &profile.Profile{}
	var contactBytes []byte

	err := r.db.QueryRow(ctx, query, profileRowID).Scan(
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.PhotoURL,
		&p.ResumeURL,
		&contactBytes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "owner")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if err := json.Unmarshal(contactBytes, &p.Contact); err != nil {
		r.logger.Warn("Failed to unmarshal profile contact", zap.Error(err))
		p.Contact = profile.Contact{}
	}

	return p, nil
}

func (r *PostgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	contactBytes, err := json.Marshal(p.Contact)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile contact", err)
	}

	query := `
		INSERT INTO profiles (id, name, title, bio, photo_url, resume_url, contact, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			photo_url = EXCLUDED.photo_url,
			resume_url = EXCLUDED.resume_url,
			contact = EXCLUDED.contact,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		profileRowID, p.Name, p.Title, p.Bio, p.PhotoURL, p.ResumeURL, contactBytes,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
