package wallet

import (
	"context"
	"fmt"
	"net/http"

	"data-wallet/internal/domain/files"
)

// ListFiles: GET /wallet.
func (c *Client) ListFiles(ctx context.Context) ([]files.WalletFile, error) {
	var out []files.WalletFile
	if err := c.doJSON(ctx, http.MethodGet, "/wallet", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadFile: PUT /wallet, form-data con el field "file".
func (c *Client) UploadFile(ctx context.Context, fileName, contentType string, data []byte) error {
	headers, err := c.authHeaders()
	if err != nil {
		return err
	}
	return c.wrap(c.http.DoMultipart(ctx, http.MethodPut, "/wallet", headers, fileName, contentType, data))
}

// DeleteFile: DELETE /wallet/{id}. El id va percent-encodeado con
// las reglas estrictas que espera el backend.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	path := fmt.Sprintf("/wallet/%s", files.EncodeResourceName(fileID))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// RawFile: GET /wallet/{id}?raw=true, body crudo.
func (c *Client) RawFile(ctx context.Context, fileID string) ([]byte, error) {
	path := fmt.Sprintf("/wallet/%s?raw=true", files.EncodeResourceName(fileID))
	return c.doRaw(ctx, http.MethodGet, path)
}

// Fetch baja un recurso externo apuntado por un Download QR. Va sin
// sesión: el recurso no es del wallet.
func (c *Client) Fetch(ctx context.Context, uri string) ([]byte, error) {
	return c.http.DoRaw(ctx, http.MethodGet, uri, nil)
}

type filesAPI struct{ c *Client }

func (a filesAPI) List(ctx context.Context) ([]files.WalletFile, error) {
	return a.c.ListFiles(ctx)
}

func (a filesAPI) Upload(ctx context.Context, fileName, contentType string, data []byte) error {
	return a.c.UploadFile(ctx, fileName, contentType, data)
}

func (a filesAPI) Delete(ctx context.Context, fileID string) error {
	return a.c.DeleteFile(ctx, fileID)
}

func (a filesAPI) Raw(ctx context.Context, fileID string) ([]byte, error) {
	return a.c.RawFile(ctx, fileID)
}

// FilesAPI expone el Client como files.API.
func (c *Client) FilesAPI() files.API {
	return filesAPI{c: c}
}
