// Package postgres implementa store.Store sobre Postgres usando pgx
// en modo database/sql.
package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para dev (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS access_grants (
	uuid            TEXT PRIMARY KEY,
	identifier      TEXT NOT NULL DEFAULT '',
	web_id          TEXT NOT NULL,
	logo            TEXT NOT NULL DEFAULT '',
	owner_name      TEXT NOT NULL DEFAULT '',
	resource        TEXT NOT NULL,
	resource_name   TEXT NOT NULL DEFAULT '',
	for_purpose     TEXT NOT NULL DEFAULT '',
	expiration_date TIMESTAMPTZ NOT NULL,
	issued_date     TIMESTAMPTZ NOT NULL,
	is_rdf_resource BOOLEAN NOT NULL DEFAULT FALSE,
	modes           TEXT NOT NULL,
	seq             BIGSERIAL
);

CREATE TABLE IF NOT EXISTS access_requests (
	uuid            TEXT PRIMARY KEY,
	web_id          TEXT NOT NULL,
	logo            TEXT NOT NULL DEFAULT '',
	owner_name      TEXT NOT NULL DEFAULT '',
	resource        TEXT NOT NULL,
	resource_name   TEXT NOT NULL DEFAULT '',
	for_purpose     TEXT NOT NULL DEFAULT '',
	expiration_date TIMESTAMPTZ NOT NULL,
	issued_date     TIMESTAMPTZ NOT NULL,
	is_rdf_resource BOOLEAN NOT NULL DEFAULT FALSE,
	modes           TEXT NOT NULL,
	seq             BIGSERIAL
);

CREATE TABLE IF NOT EXISTS wallet_files (
	identifier      TEXT PRIMARY KEY,
	file_name       TEXT NOT NULL,
	is_rdf_resource BOOLEAN NOT NULL DEFAULT FALSE,
	content_type    TEXT NOT NULL DEFAULT '',
	data            BYTEA NOT NULL,
	seq             BIGSERIAL
);

CREATE TABLE IF NOT EXISTS prompt_resources (
	web_id        TEXT NOT NULL,
	type          TEXT NOT NULL,
	resource      TEXT NOT NULL,
	resource_name TEXT NOT NULL DEFAULT '',
	logo          TEXT NOT NULL DEFAULT '',
	owner_name    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (web_id, type)
);
`

// EnsureSchema crea las tablas si faltan (dev only; sin migraciones
// versionadas).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
