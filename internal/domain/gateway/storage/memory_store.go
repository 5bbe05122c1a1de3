package storage

import (
	"context"
	"strconv"
	"sync"

	"weather-widget/internal/domain/model"
)

// MemoryStore keeps items in process memory. Contents are lost on restart.
type MemoryStore struct {
	mutex sync.RWMutex
	items map[string]string
}

var _ KeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *MemoryStore) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStore) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStore) Health() model.ComponentHealthStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "memory",
			"items":   strconv.Itoa(len(s.items)),
		},
	}
}
