package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/domain/files"
	"data-wallet/internal/server/store"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const grantColumns = `
	uuid, identifier, web_id, logo, owner_name,
	resource, resource_name, for_purpose,
	expiration_date, issued_date, is_rdf_resource, modes
`

func (s *Store) ListGrants(ctx context.Context) ([]accessgrants.Grant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+grantColumns+`
		FROM access_grants
		ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]accessgrants.Grant, 0)
	for rows.Next() {
		var g accessgrants.Grant
		var modes string
		if err := rows.Scan(
			&g.UUID, &g.Identifier, &g.WebID, &g.Logo, &g.OwnerName,
			&g.Resource, &g.ResourceName, &g.ForPurpose,
			&g.ExpirationDate, &g.IssuedDate, &g.IsRDFResource, &modes,
		); err != nil {
			return nil, err
		}
		g.Modes = modesFromText(modes)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) CreateGrant(ctx context.Context, g accessgrants.Grant) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO access_grants (`+grantColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		g.UUID, g.Identifier, g.WebID, g.Logo, g.OwnerName,
		g.Resource, g.ResourceName, g.ForPurpose,
		g.ExpirationDate, g.IssuedDate, g.IsRDFResource,
		modesToText(g.Modes),
	)
	return err
}

func (s *Store) DeleteGrant(ctx context.Context, uuid string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM access_grants WHERE uuid = $1`, uuid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteGrants borra el lote en una transacción: o salen todos o no
// sale ninguno.
func (s *Store) DeleteGrants(ctx context.Context, uuids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range uuids {
		res, err := tx.ExecContext(ctx, `DELETE FROM access_grants WHERE uuid = $1`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return store.ErrNotFound
		}
	}
	return tx.Commit()
}

const requestColumns = `
	uuid, web_id, logo, owner_name,
	resource, resource_name, for_purpose,
	expiration_date, issued_date, is_rdf_resource, modes
`

func (s *Store) ListRequests(ctx context.Context) ([]accessrequests.Request, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM access_requests
		ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]accessrequests.Request, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetRequest(ctx context.Context, uuid string) (accessrequests.Request, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+`
		FROM access_requests
		WHERE uuid = $1
	`, uuid)

	r, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return accessrequests.Request{}, store.ErrNotFound
	}
	return r, err
}

func (s *Store) CreateRequest(ctx context.Context, r accessrequests.Request) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO access_requests (`+requestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		r.UUID, r.WebID, r.Logo, r.OwnerName,
		r.Resource, r.ResourceName, r.ForPurpose,
		r.ExpirationDate, r.IssuedDate, r.IsRDFResource,
		modesToText(r.Modes),
	)
	return err
}

func (s *Store) DeleteRequest(ctx context.Context, uuid string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM access_requests WHERE uuid = $1`, uuid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListFiles(ctx context.Context) ([]files.WalletFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identifier, file_name, is_rdf_resource
		FROM wallet_files
		ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]files.WalletFile, 0)
	for rows.Next() {
		var f files.WalletFile
		if err := rows.Scan(&f.Identifier, &f.FileName, &f.IsRDFResource); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) PutFile(ctx context.Context, f store.StoredFile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wallet_files (identifier, file_name, is_rdf_resource, content_type, data)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (identifier) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			is_rdf_resource = EXCLUDED.is_rdf_resource,
			content_type = EXCLUDED.content_type,
			data = EXCLUDED.data
	`, f.Identifier, f.FileName, f.IsRDFResource, f.ContentType, f.Data)
	return err
}

func (s *Store) GetFile(ctx context.Context, id string) (store.StoredFile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT identifier, file_name, is_rdf_resource, content_type, data
		FROM wallet_files
		WHERE identifier = $1
	`, id)

	var f store.StoredFile
	err := row.Scan(&f.Identifier, &f.FileName, &f.IsRDFResource, &f.ContentType, &f.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.StoredFile{}, store.ErrNotFound
	}
	return f, err
}

func (s *Store) DeleteFile(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM wallet_files WHERE identifier = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) FindPromptResource(ctx context.Context, webID, resourceType string) (store.PromptResource, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT web_id, type, resource, resource_name, logo, owner_name
		FROM prompt_resources
		WHERE web_id = $1 AND type = $2
	`, webID, resourceType)

	var p store.PromptResource
	err := row.Scan(&p.WebID, &p.Type, &p.Resource, &p.ResourceName, &p.Logo, &p.OwnerName)
	if errors.Is(err, sql.ErrNoRows) {
		return store.PromptResource{}, store.ErrNotFound
	}
	return p, err
}

func (s *Store) CreatePromptResource(ctx context.Context, p store.PromptResource) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prompt_resources (web_id, type, resource, resource_name, logo, owner_name)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (web_id, type) DO UPDATE SET
			resource = EXCLUDED.resource,
			resource_name = EXCLUDED.resource_name,
			logo = EXCLUDED.logo,
			owner_name = EXCLUDED.owner_name
	`, p.WebID, p.Type, p.Resource, p.ResourceName, p.Logo, p.OwnerName)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (accessrequests.Request, error) {
	var r accessrequests.Request
	var modes string
	err := row.Scan(
		&r.UUID, &r.WebID, &r.Logo, &r.OwnerName,
		&r.Resource, &r.ResourceName, &r.ForPurpose,
		&r.ExpirationDate, &r.IssuedDate, &r.IsRDFResource, &modes,
	)
	if err != nil {
		return accessrequests.Request{}, err
	}
	r.Modes = modesFromText(modes)
	return r, nil
}

// Los modes se guardan como CSV simple ("Read,Write"); los valores
// del enum no llevan comas.
func modesToText(modes []accessgrants.Mode) string {
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ",")
}

func modesFromText(s string) []accessgrants.Mode {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]accessgrants.Mode, 0, len(parts))
	for _, p := range parts {
		out = append(out, accessgrants.Mode(strings.TrimSpace(p)))
	}
	return out
}
