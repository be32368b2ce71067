// Package store define el contrato de persistencia del dev server.
// Los adapters (memoria y Postgres) lo implementan; los handlers no
// saben cuál tienen atrás.
package store

import (
	"context"
	"errors"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/domain/files"
)

var ErrNotFound = errors.New("not found")

// StoredFile es un archivo del wallet con su contenido.
type StoredFile struct {
	files.WalletFile
	ContentType string
	Data        []byte
}

// PromptResource es una entrada del registro de access prompts:
// qué recurso ofrece un (webId, type).
type PromptResource struct {
	WebID        string
	Type         string
	Resource     string
	ResourceName string
	Logo         string
	OwnerName    string
}

type Store interface {
	// Grants
	ListGrants(ctx context.Context) ([]accessgrants.Grant, error)
	CreateGrant(ctx context.Context, g accessgrants.Grant) error
	DeleteGrant(ctx context.Context, uuid string) error
	// DeleteGrants borra el lote entero o nada (ErrNotFound si
	// alguno no existe).
	DeleteGrants(ctx context.Context, uuids []string) error

	// Inbox
	ListRequests(ctx context.Context) ([]accessrequests.Request, error)
	GetRequest(ctx context.Context, uuid string) (accessrequests.Request, error)
	CreateRequest(ctx context.Context, r accessrequests.Request) error
	DeleteRequest(ctx context.Context, uuid string) error

	// Files
	ListFiles(ctx context.Context) ([]files.WalletFile, error)
	PutFile(ctx context.Context, f StoredFile) error
	GetFile(ctx context.Context, id string) (StoredFile, error)
	DeleteFile(ctx context.Context, id string) error

	// Prompts
	FindPromptResource(ctx context.Context, webID, resourceType string) (PromptResource, error)
	CreatePromptResource(ctx context.Context, p PromptResource) error
}
