// Package accessrequests maneja el inbox de pedidos de acceso de
// terceros: listarlos y confirmarlos o denegarlos.
package accessrequests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/platform/querycache"
)

var ErrInvalidInput = errors.New("invalid input")

// MutationTag identifica las mutations del inbox en vuelo.
const MutationTag = "accessRequestsMutation"

// Action es la resolución de un pedido.
type Action string

const (
	ActionConfirm Action = "CONFIRM"
	ActionDeny    Action = "DENY"
)

// Request es un pedido de acceso pendiente en el inbox. Mismo shape
// wire que un grant: al confirmarse se convierte en uno.
type Request struct {
	UUID           string              `json:"uuid"`
	WebID          string              `json:"webId"`
	Logo           string              `json:"logo"`
	OwnerName      string              `json:"ownerName"`
	Resource       string              `json:"resource"`
	ResourceName   string              `json:"resourceName"`
	ForPurpose     string              `json:"forPurpose"`
	ExpirationDate time.Time           `json:"expirationDate"`
	IssuedDate     time.Time           `json:"issuedDate"`
	IsRDFResource  bool                `json:"isRDFResource"`
	Modes          []accessgrants.Mode `json:"modes"`
}

// API es el port remoto del inbox.
type API interface {
	List(ctx context.Context) ([]Request, error)
	Update(ctx context.Context, uuid string, action Action) error
}

type Service struct {
	api   API
	cache *querycache.Cache
	log   logger.Logger
}

func NewService(api API, cache *querycache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{api: api, cache: cache, log: log}

	cache.Register(querycache.KeyAccessRequests, func(ctx context.Context) (any, error) {
		return api.List(ctx)
	})
	return s
}

// List devuelve los pedidos pendientes (cache o fetch).
func (s *Service) List(ctx context.Context) ([]Request, error) {
	v, err := s.cache.Get(ctx, querycache.KeyAccessRequests)
	if err != nil {
		return nil, err
	}
	reqs, _ := v.([]Request)
	return reqs, nil
}

// Update resuelve un pedido. Confirmar crea un grant del lado del
// backend, así que además del inbox se invalida la lista de grants.
func (s *Service) Update(ctx context.Context, uuid string, action Action) error {
	uuid = strings.TrimSpace(uuid)
	if uuid == "" {
		return ErrInvalidInput
	}
	if action != ActionConfirm && action != ActionDeny {
		return ErrInvalidInput
	}

	done := s.cache.Begin(MutationTag)
	defer done()

	if err := s.api.Update(ctx, uuid, action); err != nil {
		return fmt.Errorf("update access request %s: %w", uuid, err)
	}

	s.cache.Invalidate(querycache.KeyAccessRequests)
	if action == ActionConfirm {
		s.cache.Invalidate(querycache.KeyAccessGrants)
	}
	s.log.Info("access request resolved", map[string]any{
		"uuid":   uuid,
		"action": string(action),
	})
	return nil
}

// Updating responde si hay una resolución en vuelo.
func (s *Service) Updating() bool {
	return s.cache.InFlight(MutationTag)
}
