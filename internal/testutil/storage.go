package testutil

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory storage.ObjectStore that records calls
type MemoryStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Puts    []string
	Deletes []string
	PutErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Objects: map[string][]byte{}}
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return "", m.PutErr
	}
	m.Objects[key] = data
	m.Puts = append(m.Puts, key)
	return "https://images.test/" + key, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	m.Deletes = append(m.Deletes, key)
	return nil
}
