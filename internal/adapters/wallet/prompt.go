package wallet

import (
	"context"
	"net/http"
	"net/url"

	"data-wallet/internal/domain/accessprompt"
)

// PromptResource: GET /accessprompt/resource?webId=...&type=...
func (c *Client) PromptResource(ctx context.Context, webID, resourceType string) (accessprompt.Resource, error) {
	params := url.Values{}
	params.Set("webId", webID)
	if resourceType != "" {
		params.Set("type", resourceType)
	}

	var out accessprompt.Resource
	path := "/accessprompt/resource?" + params.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return accessprompt.Resource{}, err
	}
	return out, nil
}

// RequestPrompt: POST /accessprompt con {resource, client}.
func (c *Client) RequestPrompt(ctx context.Context, resource, client string) error {
	body := map[string]string{
		"resource": resource,
		"client":   client,
	}
	return c.doJSON(ctx, http.MethodPost, "/accessprompt", body, nil)
}

type promptAPI struct{ c *Client }

func (a promptAPI) Resource(ctx context.Context, webID, resourceType string) (accessprompt.Resource, error) {
	return a.c.PromptResource(ctx, webID, resourceType)
}

func (a promptAPI) Request(ctx context.Context, resource, client string) error {
	return a.c.RequestPrompt(ctx, resource, client)
}

// PromptAPI expone el Client como accessprompt.API.
func (c *Client) PromptAPI() accessprompt.API {
	return promptAPI{c: c}
}
