package wallet

import (
	"context"
	"net/http"
)

// Login canjea credenciales dev por un token de sesión: POST /login.
// El caller decide dónde guardarlo (session.Store).
func (c *Client) Login(ctx context.Context, username string) (string, error) {
	body := map[string]string{"username": username}

	var out struct {
		Token string `json:"token"`
	}
	// Sin authHeaders: login es el único endpoint no autenticado.
	if err := c.http.DoJSON(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}
