package session

import "errors"

// ErrNoSession indica que no hay token guardado: los requests remotos
// deben cortocircuitar, no es un error del servidor.
var ErrNoSession = errors.New("no active session")

// Store guarda el token de sesión de forma segura.
// Token devuelve ErrNoSession si no hay sesión activa.
type Store interface {
	Token() (string, error)
	Set(token string) error
	Clear() error
}
