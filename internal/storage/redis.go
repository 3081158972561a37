package storage

import (
	"context"
	"errors"
	"gentle-keeper_app/internal/config"
	"gentle-keeper_app/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the blob under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(ctx context.Context, cfg config.RedisConfig, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Load(ctx context.Context) (models.Logs, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Logs{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *RedisStore) Save(ctx context.Context, logs models.Logs) error {
	data, err := Encode(logs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
