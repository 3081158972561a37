package storage

import (
	"context"
	"gentle-keeper_app/internal/database"
	"gentle-keeper_app/internal/models"
)

// SQLStore keeps the blob in one row of the kv_buckets table.
type SQLStore struct {
	repo   *database.Repository
	bucket string
}

// NewSQLStore creates the table if needed.
func NewSQLStore(ctx context.Context, repo *database.Repository, bucket string) (*SQLStore, error) {
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}
	return &SQLStore{repo: repo, bucket: bucket}, nil
}

func (s *SQLStore) Load(ctx context.Context) (models.Logs, error) {
	data, err := s.repo.Get(ctx, s.bucket)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *SQLStore) Save(ctx context.Context, logs models.Logs) error {
	data, err := Encode(logs)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, s.bucket, data)
}

func (s *SQLStore) Close() error {
	return s.repo.Close()
}
