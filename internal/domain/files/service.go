package files

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"data-wallet/internal/platform/logger"
	"data-wallet/internal/platform/querycache"
)

var ErrInvalidInput = errors.New("invalid input")

// MutationTag identifica las mutations de archivos en vuelo.
const MutationTag = "filesMutation"

// Service maneja el listado del wallet y el flujo "save to wallet"
// de un Download QR. La lista vive en el cache bajo KeyFiles.
type Service struct {
	api     API
	fetcher Fetcher
	cache   *querycache.Cache
	log     logger.Logger
}

func NewService(api API, fetcher Fetcher, cache *querycache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{api: api, fetcher: fetcher, cache: cache, log: log}

	cache.Register(querycache.KeyFiles, func(ctx context.Context) (any, error) {
		return api.List(ctx)
	})
	return s
}

// List devuelve los archivos del wallet (cache o fetch).
func (s *Service) List(ctx context.Context) ([]WalletFile, error) {
	v, err := s.cache.Get(ctx, querycache.KeyFiles)
	if err != nil {
		return nil, err
	}
	files, _ := v.([]WalletFile)
	return files, nil
}

// Refetch fuerza un fetch de la lista.
func (s *Service) Refetch(ctx context.Context) ([]WalletFile, error) {
	v, err := s.cache.Refetch(ctx, querycache.KeyFiles)
	if err != nil {
		return nil, err
	}
	files, _ := v.([]WalletFile)
	return files, nil
}

// SaveToWallet completa un Download QR: baja el recurso apuntado por
// uri y lo sube al wallet. El nombre sale del último segmento del
// path; el contentType pierde sus parámetros (";charset=...").
// En éxito invalida la lista de archivos.
func (s *Service) SaveToWallet(ctx context.Context, uri, contentType string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ErrInvalidInput
	}

	fileName := NameFromURI(uri)
	if fileName == "" {
		return ErrInvalidInput
	}
	bare := BareContentType(contentType)

	done := s.cache.Begin(MutationTag)
	defer done()

	data, err := s.fetcher.Fetch(ctx, uri)
	if err != nil {
		return fmt.Errorf("fetch download source: %w", err)
	}

	if err := s.api.Upload(ctx, fileName, bare, data); err != nil {
		return fmt.Errorf("upload %s to wallet: %w", fileName, err)
	}

	s.cache.Invalidate(querycache.KeyFiles)
	s.log.Info("file saved to wallet", map[string]any{
		"fileName":    fileName,
		"contentType": bare,
	})
	return nil
}

// Delete borra un archivo del wallet e invalida la lista.
func (s *Service) Delete(ctx context.Context, fileID string) error {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return ErrInvalidInput
	}

	done := s.cache.Begin(MutationTag)
	defer done()

	if err := s.api.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("delete wallet file: %w", err)
	}
	s.cache.Invalidate(querycache.KeyFiles)
	return nil
}

// Raw baja el contenido crudo de un archivo del wallet.
func (s *Service) Raw(ctx context.Context, fileID string) ([]byte, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return nil, ErrInvalidInput
	}
	return s.api.Raw(ctx, fileID)
}

// Updating responde si hay una mutation de archivos en vuelo.
func (s *Service) Updating() bool {
	return s.cache.InFlight(MutationTag)
}
