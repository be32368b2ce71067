// Package config junta la configuración del cliente y del dev
// server desde env vars, con un .env opcional para desarrollo.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Cliente
	WalletAPI   string        // base URL del backend del wallet
	SessionFile string        // override del path del token (opcional)
	HTTPTimeout time.Duration

	// Dev server
	Port      string
	DBDSN     string // vacío => storage en memoria
	JWTSecret string
}

// Load lee el .env si existe (best-effort) y después el environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		WalletAPI:   getenv("WALLET_API", "http://localhost:8080"),
		SessionFile: os.Getenv("SESSION_FILE"),
		HTTPTimeout: getduration("HTTP_TIMEOUT", 10*time.Second),

		Port:      getenv("PORT", "8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: getenv("JWT_SECRET", "dev-only-secret"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
