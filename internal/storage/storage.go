// Package storage persists the whole models.Logs store as one JSON blob in a
// named bucket. Adapters exist for a local file, a SQL table (SQLite or
// PostgreSQL), Redis and memory.
//
// Adapters report every failure. Deciding that a failed load means "empty
// store" and a failed save means "keep going" is the caller's job.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"gentle-keeper_app/internal/models"
)

// Port loads and saves the entire store.
type Port interface {
	Load(ctx context.Context) (models.Logs, error)
	Save(ctx context.Context, logs models.Logs) error
	Close() error
}

// Decode parses a stored blob. An empty blob is an empty store.
func Decode(data []byte) (models.Logs, error) {
	if len(data) == 0 {
		return models.Logs{}, nil
	}
	var logs models.Logs
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}
	if logs == nil {
		logs = models.Logs{}
	}
	return logs, nil
}

func Encode(logs models.Logs) ([]byte, error) {
	if logs == nil {
		logs = models.Logs{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return nil, fmt.Errorf("encode logs: %w", err)
	}
	return data, nil
}
