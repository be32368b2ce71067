package wallet

import (
	"context"
	"fmt"
	"net/http"

	"data-wallet/internal/domain/accessrequests"
)

// ListRequests implementa accessrequests.API.List: GET /inbox.
func (c *Client) ListRequests(ctx context.Context) ([]accessrequests.Request, error) {
	var reqs []accessrequests.Request
	if err := c.doJSON(ctx, http.MethodGet, "/inbox", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// UpdateRequest resuelve un pedido:
// PUT /inbox/{uuid}/grantAccess o /inbox/{uuid}/denyAccess.
func (c *Client) UpdateRequest(ctx context.Context, uuid string, action accessrequests.Action) error {
	verb := "denyAccess"
	if action == accessrequests.ActionConfirm {
		verb = "grantAccess"
	}
	path := fmt.Sprintf("/inbox/%s/%s", uuid, verb)
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// requestsAPI adapta el Client al port del inbox sin renombrar los
// métodos del dominio.
type requestsAPI struct{ c *Client }

func (a requestsAPI) List(ctx context.Context) ([]accessrequests.Request, error) {
	return a.c.ListRequests(ctx)
}

func (a requestsAPI) Update(ctx context.Context, uuid string, action accessrequests.Action) error {
	return a.c.UpdateRequest(ctx, uuid, action)
}

// RequestsAPI expone el Client como accessrequests.API.
func (c *Client) RequestsAPI() accessrequests.API {
	return requestsAPI{c: c}
}
