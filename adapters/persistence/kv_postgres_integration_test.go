package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hengtai25/portfolio-api/internal/application/service"
)

type KVPostgresIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	store       *PostgresKVStore
}

func (s *KVPostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.store = NewPostgresKVStore(s.dbPool)
}

func (s *KVPostgresIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *KVPostgresIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), "TRUNCATE kv_entries")
	s.Require().NoError(err)
}

func (s *KVPostgresIntegrationTestSuite) TestSetAndGet() {
	ctx := context.Background()

	err := s.store.Set(ctx, "portfolio:editor-draft", []byte(`{"version":"alpha"}`))
	s.Require().NoError(err)

	value, err := s.store.Get(ctx, "portfolio:editor-draft")
	s.Require().NoError(err)
	s.Equal([]byte(`{"version":"alpha"}`), value)
}

func (s *KVPostgresIntegrationTestSuite) TestSetUpserts() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "portfolio:published-version", []byte("alpha")))
	s.Require().NoError(s.store.Set(ctx, "portfolio:published-version", []byte("beta")))

	value, err := s.store.Get(ctx, "portfolio:published-version")
	s.Require().NoError(err)
	s.Equal([]byte("beta"), value)

	var count int
	err = s.dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM kv_entries").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *KVPostgresIntegrationTestSuite) TestGetMissingKey() {
	_, err := s.store.Get(context.Background(), "portfolio:theme")
	s.ErrorIs(err, service.ErrKeyNotFound)
}

func (s *KVPostgresIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "portfolio:custom-themes", []byte("[]")))
	s.Require().NoError(s.store.Delete(ctx, "portfolio:custom-themes"))

	_, err := s.store.Get(ctx, "portfolio:custom-themes")
	s.ErrorIs(err, service.ErrKeyNotFound)

	s.NoError(s.store.Delete(ctx, "portfolio:custom-themes"))
}

func TestKVPostgresIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KVPostgresIntegrationTestSuite))
}
