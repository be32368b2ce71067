package session

import (
	"sync"

	ports "data-wallet/internal/ports/session"
)

// MemStore es un store en memoria (tests y flujos efímeros).
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ports.ErrNoSession
	}
	return s.token, nil
}

func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
