package accessgrants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"data-wallet/internal/platform/logger"
	"data-wallet/internal/platform/querycache"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBadState     = errors.New("invalid state")
)

// MutationTag identifica las mutations de revocación en vuelo.
const MutationTag = "accessGrantsMutation"

// Service orquesta fetch + agrupación + revocación. La lista plana
// vive en el query cache bajo KeyAccessGrants; la agrupación se
// recalcula en cada lectura, nunca se cachea aparte.
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

	cache.Register(querycache.KeyAccessGrants, func(ctx context.Context) (any, error) {
		return api.List(ctx)
	})
	return s
}

// Groups devuelve los grants agrupados por WebID (cache o fetch).
func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	v, err := s.cache.Get(ctx, querycache.KeyAccessGrants)
	if err != nil {
		return nil, err
	}
	return GroupByWebID(asGrants(v)), nil
}

// RefetchGroups fuerza un fetch y devuelve la agrupación fresca.
func (s *Service) RefetchGroups(ctx context.Context) ([]Group, error) {
	v, err := s.cache.Refetch(ctx, querycache.KeyAccessGrants)
	if err != nil {
		return nil, err
	}
	return GroupByWebID(asGrants(v)), nil
}

// RevokeGrant revoca un grant puntual. En éxito invalida la lista
// cacheada; el caller debe refetchear (o salir de la vista si era el
// último item del grupo). En error no toca nada local.
func (s *Service) RevokeGrant(ctx context.Context, uuid string) error {
	uuid = strings.TrimSpace(uuid)
	if uuid == "" {
		return ErrInvalidInput
	}

	done := s.cache.Begin(MutationTag)
	defer done()

	if err := s.api.Revoke(ctx, uuid); err != nil {
		return fmt.Errorf("revoke grant %s: %w", uuid, err)
	}

	s.cache.Invalidate(querycache.KeyAccessGrants)
	s.log.Info("access grant revoked", map[string]any{"uuid": uuid})
	return nil
}

// RevokeGroup revoca todos los grants de un grupo en un solo request.
// En éxito el grupo deja de existir: el caller sale de la vista de
// detalle incondicionalmente.
func (s *Service) RevokeGroup(ctx context.Context, group Group) error {
	if len(group.Items) == 0 {
		return ErrInvalidInput
	}

	uuids := make([]string, 0, len(group.Items))
	for _, item := range group.Items {
		uuids = append(uuids, item.UUID)
	}

	done := s.cache.Begin(MutationTag)
	defer done()

	if err := s.api.RevokeList(ctx, uuids); err != nil {
		return fmt.Errorf("revoke grant list for %s: %w", group.WebID, err)
	}

	s.cache.Invalidate(querycache.KeyAccessGrants)
	s.log.Info("access grant group revoked", map[string]any{
		"webId": group.WebID,
		"count": len(uuids),
	})
	return nil
}

// Updating responde si hay una revocación en vuelo (loading indicator).
func (s *Service) Updating() bool {
	return s.cache.InFlight(MutationTag)
}

func asGrants(v any) []Grant {
	grants, _ := v.([]Grant)
	return grants
}
