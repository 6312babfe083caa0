package receipt

import (
	"context"
	"sync"
)

// InMemoryStore keeps accepted receipts in a guarded map for the lifetime of
// the process.
type InMemoryStore struct {
	mu       sync.RWMutex
	receipts map[string]*Receipt
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{receipts: make(map[string]*Receipt)}
}

func (s *InMemoryStore) Put(_ context.Context, id string, r *Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[id] = r
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id string) (*Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.receipts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}
