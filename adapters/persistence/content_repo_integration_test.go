package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ContentRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *ContentRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNop()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := Migrate("file://../../migrations", dsn, s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	if err := SeedContent(ctx, s.dbPool, s.testLogger); err != nil {
		s.T().Fatalf("Failed to seed content: %s", err)
	}
}

func (s *ContentRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestContentRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ContentRepoIntegrationTestSuite))
}

func (s *ContentRepoIntegrationTestSuite) Test_Profile_RoundTrip() {
	p, err := NewPostgresProfileRepo(s.dbPool, s.testLogger).Get(context.Background())

	s.NoError(err)
	s.Equal(SeedProfile(), p)
}

func (s *ContentRepoIntegrationTestSuite) Test_Projects_KeepSeedOrder() {
	repo := NewPostgresProjectRepo(s.dbPool, s.testLogger)

	projects, err := repo.List(context.Background())
	s.NoError(err)
	s.Equal(SeedProjects(), projects)

	p, err := repo.FindByID(context.Background(), "music-player")
	s.NoError(err)
	s.Nil(p.DemoURL)

	_, err = repo.FindByID(context.Background(), "nope")
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentRepoIntegrationTestSuite) Test_Technologies_KeepSeedOrder() {
	techs, err := NewPostgresTechnologyRepo(s.dbPool, s.testLogger).List(context.Background())

	s.NoError(err)
	s.Equal(SeedTechnologies(), techs)
}

func (s *ContentRepoIntegrationTestSuite) Test_Contact_Save() {
	ctx := context.Background()
	m := &contact.Message{
		ID: uuid.New(), Name: "Ann", Email: "ann@example.com",
		Subject: "Hello", Body: "Nice site", ReceivedAt: time.Now().UTC(),
	}

	s.NoError(NewPostgresContactRepo(s.dbPool, s.testLogger).Save(ctx, m))

	var count int
	s.NoError(s.dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE id = $1`, m.ID).Scan(&count))
	s.Equal(1, count)
}
