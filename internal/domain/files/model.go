package files

import "context"

// WalletFile es un archivo guardado en el wallet remoto.
type WalletFile struct {
	FileName      string `json:"fileName"`
	Identifier    string `json:"identifier"`
	IsRDFResource bool   `json:"isRDFResource"`
}

// API es el port remoto de archivos del wallet.
// Upload sube bytes como form-data; Raw baja el contenido crudo.
type API interface {
	List(ctx context.Context) ([]WalletFile, error)
	Upload(ctx context.Context, fileName, contentType string, data []byte) error
	Delete(ctx context.Context, fileID string) error
	Raw(ctx context.Context, fileID string) ([]byte, error)
}

// Fetcher trae el contenido apuntado por un Download QR (el recurso
// externo, no el wallet). Abstrae el origen para poder testear el
// flujo de guardado sin red.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}
