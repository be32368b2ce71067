// Package session guarda el token de sesión del wallet en disco,
// análogo al secure storage del dispositivo.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ports "data-wallet/internal/ports/session"
)

const sessionFileName = "session"

// FileStore persiste el token en un archivo 0600 bajo el config dir
// del usuario.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore crea el store en `path`; si path es vacío usa
// <UserConfigDir>/data-wallet/session.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session store: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "data-wallet", sessionFileName)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ports.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("session store: read: %w", err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ports.ErrNoSession
	}
	return token, nil
}

func (s *FileStore) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("session store: empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session store: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session store: write: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}
