package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hengtai25/portfolio-api/internal/application/service"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresKVStore keeps settings in the kv_entries table, one row per
// key. Writes upsert.
type PostgresKVStore struct {
	db *pgxpool.Pool
}

func NewPostgresKVStore(db *pgxpool.Pool) *PostgresKVStore {
	return &PostgresKVStore{db: db}
}

func (s *PostgresKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From("kv_entries").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var value []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresKVStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert("kv_entries").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresKVStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.
		Delete("kv_entries").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
