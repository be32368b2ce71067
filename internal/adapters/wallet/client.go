// Package wallet es el adapter HTTP contra el backend del wallet.
// Un solo Client implementa los ports remotos de todos los dominios
// (grants, inbox, files, prompts) sobre el contrato wire documentado.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"data-wallet/internal/platform/httpclient"
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/ports/session"
)

var (
	ErrNotConfigured = errors.New("wallet client not configured")

	// ErrUnauthorized: el backend respondió 401. Es fatal para la
	// sesión, no para la operación: el Client ya limpió el token y
	// disparó el hook de logout antes de devolverlo.
	ErrUnauthorized = errors.New("wallet session expired")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http     *httpclient.Client
	sessions session.Store
	log      logger.Logger

	// onSessionExpired corre una vez por 401 (redirect a login).
	onSessionExpired func()
}

func NewClient(cfg Config, sessions session.Store, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{http: hc, sessions: sessions, log: log}, nil
}

// OnSessionExpired registra el hook de logout forzado.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// authHeaders corta sin red si no hay sesión (session.ErrNoSession).
func (c *Client) authHeaders() (map[string]string, error) {
	token, err := c.sessions.Token()
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": "Bearer " + token}, nil
}

// doJSON hace un request autenticado con manejo transversal de 401.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	headers, err := c.authHeaders()
	if err != nil {
		return err
	}
	return c.wrap(c.http.DoJSON(ctx, method, path, headers, in, out))
}

func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	headers, err := c.authHeaders()
	if err != nil {
		return nil, err
	}
	b, err := c.http.DoRaw(ctx, method, path, headers)
	if err != nil {
		return nil, c.wrap(err)
	}
	return b, nil
}

// wrap traduce el 401 al contrato de sesión: token afuera, hook de
// logout, ErrUnauthorized para el caller. El resto pasa tal cual.
func (c *Client) wrap(err error) error {
	if err == nil {
		return nil
	}
	if httpclient.StatusOf(err) != http.StatusUnauthorized {
		return err
	}

	if clearErr := c.sessions.Clear(); clearErr != nil {
		c.log.Error("clear session after 401", map[string]any{"err": clearErr.Error()})
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	c.log.Warn("wallet session invalidated by 401", nil)
	return fmt.Errorf("%w: %v", ErrUnauthorized, err)
}
