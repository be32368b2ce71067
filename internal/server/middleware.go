package server

import (
	"context"
	"net/http"
	"strings"

	"data-wallet/internal/platform/logger"
)

type ctxKey string

const userKey ctxKey = "user"

// authContext verifica el Bearer token y mete el username en el
// context. No corta acá: los handlers deciden el 401 (misma idea que
// dejar la decisión de authz en el edge de cada ruta).
func authContext(tokens *Tokens, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := tokens.Verify(token)
			if err != nil {
				log.Debug("session token rejected", map[string]any{
					"path": r.URL.Path,
					"err":  err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// currentUser devuelve el usuario autenticado del request.
func currentUser(ctx context.Context) (string, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return "", false
	}
	u, ok := v.(string)
	return u, ok && u != ""
}

// requireAuth responde 401 si no hay usuario; devuelve false en ese
// caso para que el handler corte.
func requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := currentUser(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
