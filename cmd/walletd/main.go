package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"data-wallet/internal/adapters/storage/memory"
	"data-wallet/internal/adapters/storage/postgres"
	"data-wallet/internal/config"
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/server"
	"data-wallet/internal/server/store"
)

func main() {
	cfg := config.Load()
	appLog := logger.NewFromEnv()

	var st store.Store
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		st = postgres.NewStore(db)
	} else {
		st = memory.New()
	}

	if os.Getenv("WALLET_SEED") == "true" {
		if err := server.Seed(context.Background(), st); err != nil {
			log.Fatalf("seed: %v", err)
		}
		appLog.Info("seeded dev data", nil)
	}

	handler := server.NewRouter(server.Options{
		Store:     st,
		JWTSecret: cfg.JWTSecret,
		Log:       appLog,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	appLog.Info("starting walletd", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
