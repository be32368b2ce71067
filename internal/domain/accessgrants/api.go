package accessgrants

import "context"

// API es el port remoto de grants contra el backend del wallet.
// Revoke y RevokeList son operaciones sin update optimista: en error
// el estado local queda intacto y el caller decide si reintenta.
type API interface {
	List(ctx context.Context) ([]Grant, error)
	Revoke(ctx context.Context, uuid string) error
	RevokeList(ctx context.Context, uuids []string) error
}
