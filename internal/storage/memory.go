package storage

import (
	"context"
	"gentle-keeper_app/internal/models"
	"sync"
)

// MemoryStore holds the encoded blob in memory, so it behaves like the real
// adapters with respect to aliasing and serialization.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte

	// LoadErr and SaveErr, when set, are returned instead of doing the work.
	LoadErr error
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (models.Logs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return Decode(s.blob)
}

func (s *MemoryStore) Save(ctx context.Context, logs models.Logs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := Encode(logs)
	if err != nil {
		return err
	}
	s.blob = data
	return nil
}

// SetBlob replaces the raw stored bytes.
func (s *MemoryStore) SetBlob(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = append([]byte(nil), data...)
}

func (s *MemoryStore) Blob() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.blob...)
}

func (s *MemoryStore) Close() error {
	return nil
}
