// Package accessprompt resuelve el flujo que arranca con un
// AccessPrompt QR: averiguar qué recurso pide la app cliente y
// disparar el pedido de acceso formal (que cae al inbox).
package accessprompt

import (
	"context"
	"errors"
	"strings"

	"data-wallet/internal/platform/logger"
)

var ErrInvalidInput = errors.New("invalid input")

// Resource describe el recurso detrás de un access prompt.
type Resource struct {
	WebID        string `json:"webId"`
	Resource     string `json:"resource"`
	ResourceName string `json:"resourceName"`
	Logo         string `json:"logo"`
	OwnerName    string `json:"ownerName"`
}

// API es el port remoto de access prompts.
type API interface {
	Resource(ctx context.Context, webID, resourceType string) (Resource, error)
	Request(ctx context.Context, resource, client string) error
}

type Service struct {
	api API
	log logger.Logger
}

func NewService(api API, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{api: api, log: log}
}

// Resolve trae el recurso que el prompt está pidiendo.
func (s *Service) Resolve(ctx context.Context, webID, resourceType string) (Resource, error) {
	webID = strings.TrimSpace(webID)
	if webID == "" {
		return Resource{}, ErrInvalidInput
	}
	return s.api.Resource(ctx, webID, resourceType)
}

// RequestAccess dispara el pedido de acceso para la app cliente.
func (s *Service) RequestAccess(ctx context.Context, resource, client string) error {
	resource = strings.TrimSpace(resource)
	client = strings.TrimSpace(client)
	if resource == "" || client == "" {
		return ErrInvalidInput
	}

	if err := s.api.Request(ctx, resource, client); err != nil {
		return err
	}
	s.log.Info("access prompt requested", map[string]any{
		"resource": resource,
		"client":   client,
	})
	return nil
}
