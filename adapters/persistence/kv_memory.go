package persistence

import (
	"context"
	"sync"

	"github.com/hengtai25/portfolio-api/internal/application/service"
)

// MemoryKVStore keeps settings in process memory. Used for tests and for
// running without a storage backend; state is lost on restart.
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{entries: make(map[string][]byte)}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return nil, service.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryKVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
