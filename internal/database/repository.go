package database

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_buckets (
		bucket     TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

// Repository stores opaque payloads by bucket name. Both supported drivers
// accept the same SQL.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Get returns the payload of bucket, or nil when it has never been written.
func (r *Repository) Get(ctx context.Context, bucket string) ([]byte, error) {
	query := `
		SELECT payload
		FROM kv_buckets
		WHERE bucket = $1
	`

	var payload string
	err := r.db.QueryRowContext(ctx, query, bucket).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

// Put replaces the payload of bucket in a single statement.
func (r *Repository) Put(ctx context.Context, bucket string, payload []byte) error {
	query := `
		INSERT INTO kv_buckets (bucket, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (bucket) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, bucket, string(payload), time.Now().UTC())
	return err
}

func (r *Repository) Close() error {
	return r.db.Close()
}
