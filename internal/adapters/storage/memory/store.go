// Package memory implementa store.Store con maps + mutex. Es el
// storage default del dev server y el que usan los tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/domain/files"
	"data-wallet/internal/server/store"
)

type promptKey struct {
	webID string
	typ   string
}

type Store struct {
	mu sync.RWMutex

	grantOrder []string
	grants     map[string]accessgrants.Grant

	requestOrder []string
	requests     map[string]accessrequests.Request

	fileOrder []string
	files     map[string]store.StoredFile

	prompts map[promptKey]store.PromptResource
}

func New() *Store {
	return &Store{
		grants:   make(map[string]accessgrants.Grant),
		requests: make(map[string]accessrequests.Request),
		files:    make(map[string]store.StoredFile),
		prompts:  make(map[promptKey]store.PromptResource),
	}
}

// ListGrants devuelve los grants en orden de inserción (el cliente
// agrupa por orden de llegada, así que el orden importa).
func (s *Store) ListGrants(ctx context.Context) ([]accessgrants.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]accessgrants.Grant, 0, len(s.grantOrder))
	for _, id := range s.grantOrder {
		if g, ok := s.grants[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Store) CreateGrant(ctx context.Context, g accessgrants.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.UUID == "" {
		return errors.New("grant uuid required")
	}
	if _, exists := s.grants[g.UUID]; exists {
		return errors.New("grant already exists")
	}
	s.grants[g.UUID] = g
	s.grantOrder = append(s.grantOrder, g.UUID)
	return nil
}

func (s *Store) DeleteGrant(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.grants[uuid]; !ok {
		return store.ErrNotFound
	}
	delete(s.grants, uuid)
	s.grantOrder = dropID(s.grantOrder, uuid)
	return nil
}

func (s *Store) DeleteGrants(ctx context.Context, uuids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Todo o nada: primero validar el lote entero.
	for _, id := range uuids {
		if _, ok := s.grants[id]; !ok {
			return store.ErrNotFound
		}
	}
	for _, id := range uuids {
		delete(s.grants, id)
		s.grantOrder = dropID(s.grantOrder, id)
	}
	return nil
}

func (s *Store) ListRequests(ctx context.Context) ([]accessrequests.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]accessrequests.Request, 0, len(s.requestOrder))
	for _, id := range s.requestOrder {
		if r, ok := s.requests[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) GetRequest(ctx context.Context, uuid string) (accessrequests.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[uuid]
	if !ok {
		return accessrequests.Request{}, store.ErrNotFound
	}
	return r, nil
}

func (s *Store) CreateRequest(ctx context.Context, r accessrequests.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.UUID == "" {
		return errors.New("request uuid required")
	}
	if _, exists := s.requests[r.UUID]; exists {
		return errors.New("request already exists")
	}
	s.requests[r.UUID] = r
	s.requestOrder = append(s.requestOrder, r.UUID)
	return nil
}

func (s *Store) DeleteRequest(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[uuid]; !ok {
		return store.ErrNotFound
	}
	delete(s.requests, uuid)
	s.requestOrder = dropID(s.requestOrder, uuid)
	return nil
}

func (s *Store) ListFiles(ctx context.Context) ([]files.WalletFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]files.WalletFile, 0, len(s.fileOrder))
	for _, id := range s.fileOrder {
		if f, ok := s.files[id]; ok {
			out = append(out, f.WalletFile)
		}
	}
	return out, nil
}

// PutFile crea o reemplaza (el upload del wallet es un PUT).
func (s *Store) PutFile(ctx context.Context, f store.StoredFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.Identifier == "" {
		return errors.New("file identifier required")
	}
	if _, exists := s.files[f.Identifier]; !exists {
		s.fileOrder = append(s.fileOrder, f.Identifier)
	}
	s.files[f.Identifier] = f
	return nil
}

func (s *Store) GetFile(ctx context.Context, id string) (store.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	if !ok {
		return store.StoredFile{}, store.ErrNotFound
	}
	return f, nil
}

func (s *Store) DeleteFile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.files, id)
	s.fileOrder = dropID(s.fileOrder, id)
	return nil
}

// dropID saca un id de un slice de orden, preservando el resto.
func dropID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func (s *Store) FindPromptResource(ctx context.Context, webID, resourceType string) (store.PromptResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[promptKey{webID: webID, typ: resourceType}]
	if !ok {
		return store.PromptResource{}, store.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreatePromptResource(ctx context.Context, p store.PromptResource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts[promptKey{webID: p.WebID, typ: p.Type}] = p
	return nil
}
