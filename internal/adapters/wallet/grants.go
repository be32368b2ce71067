package wallet

import (
	"context"
	"fmt"
	"net/http"

	"data-wallet/internal/domain/accessgrants"
)

// ListGrants: GET /accessgrants. Array vacío es válido y significa
// "sin grants".
func (c *Client) ListGrants(ctx context.Context) ([]accessgrants.Grant, error) {
	var grants []accessgrants.Grant
	if err := c.doJSON(ctx, http.MethodGet, "/accessgrants", nil, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

// RevokeGrant: PUT /accessgrants/{uuid}/revoke, sin body.
func (c *Client) RevokeGrant(ctx context.Context, uuid string) error {
	path := fmt.Sprintf("/accessgrants/%s/revoke", uuid)
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// RevokeGrantList revoca un lote en un solo request:
// PUT /accessgrants/revoke con {"uuids": [...]}.
func (c *Client) RevokeGrantList(ctx context.Context, uuids []string) error {
	body := map[string][]string{"uuids": uuids}
	return c.doJSON(ctx, http.MethodPut, "/accessgrants/revoke", body, nil)
}

type grantsAPI struct{ c *Client }

func (a grantsAPI) List(ctx context.Context) ([]accessgrants.Grant, error) {
	return a.c.ListGrants(ctx)
}

func (a grantsAPI) Revoke(ctx context.Context, uuid string) error {
	return a.c.RevokeGrant(ctx, uuid)
}

func (a grantsAPI) RevokeList(ctx context.Context, uuids []string) error {
	return a.c.RevokeGrantList(ctx, uuids)
}

// GrantsAPI expone el Client como accessgrants.API.
func (c *Client) GrantsAPI() accessgrants.API {
	return grantsAPI{c: c}
}
