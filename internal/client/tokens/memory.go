package tokens

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[Slot]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[Slot]string)}
}

func (s *MemoryStore) Get(_ context.Context, slot Slot) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[slot], nil
}

func (s *MemoryStore) Set(_ context.Context, values map[Slot]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, slots ...Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range slots {
		delete(s.values, k)
	}
	return nil
}
