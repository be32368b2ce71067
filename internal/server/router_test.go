package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"data-wallet/internal/adapters/storage/memory"
	"data-wallet/internal/server"
)

func newTestServer(t *testing.T, seed bool) (*httptest.Server, string) {
	t.Helper()

	st := memory.New()
	if seed {
		if err := server.Seed(context.Background(), st); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	ts := httptest.NewServer(server.NewRouter(server.Options{Store: st}))
	t.Cleanup(ts.Close)

	// login dev: username alcanza
	st2, body := doReq(t, ts.URL, "POST", "/login", "", map[string]any{"username": "owner"})
	if st2 != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st2, string(body))
	}
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login: missing token body=%s", string(body))
	}
	return ts, resp.Token
}

func TestHTTP_RequiresSession(t *testing.T) {
	ts, _ := newTestServer(t, false)

	for _, path := range []string{"/accessgrants", "/inbox", "/wallet"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token, got %d", path, st)
		}
	}

	// Token inválido termina igual que token ausente: 401.
	st, _ := doReq(t, ts.URL, "GET", "/accessgrants", "not-a-valid-token", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health without token, got %d", st)
	}
}

func TestHTTP_EndToEnd_GrantsLifecycle(t *testing.T) {
	ts, token := newTestServer(t, true)

	grants := listGrants(t, ts.URL, token)
	if len(grants) != 3 {
		t.Fatalf("expected 3 seeded grants, got %d", len(grants))
	}

	// revocación puntual
	{
		st, body := doReq(t, ts.URL, "PUT", "/accessgrants/"+grants[0].UUID+"/revoke", token, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 revoke, got %d body=%s", st, string(body))
		}
	}
	if left := listGrants(t, ts.URL, token); len(left) != 2 {
		t.Fatalf("expected 2 grants after revoke, got %d", len(left))
	}

	// revocación en lote, un solo request
	{
		remaining := listGrants(t, ts.URL, token)
		uuids := []string{remaining[0].UUID, remaining[1].UUID}
		st, body := doReq(t, ts.URL, "PUT", "/accessgrants/revoke", token, map[string]any{"uuids": uuids})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 bulk revoke, got %d body=%s", st, string(body))
		}
	}
	if left := listGrants(t, ts.URL, token); len(left) != 0 {
		t.Fatalf("expected no grants after bulk revoke, got %d", len(left))
	}

	// lote vacío => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/accessgrants/revoke", token, map[string]any{"uuids": []string{}})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty batch, got %d", st)
		}
	}

	// revocar algo inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/accessgrants/nope/revoke", token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown grant, got %d", st)
		}
	}
}

func TestHTTP_PromptToInboxToGrant(t *testing.T) {
	ts, token := newTestServer(t, false)

	// 1) El prompt crea un pedido pendiente en el inbox
	{
		st, body := doReq(t, ts.URL, "POST", "/accessprompt", token, map[string]any{
			"resource": "https://storage.example.org/wallet/passport.jpg",
			"client":   "https://verifier.example.org",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 prompt, got %d body=%s", st, string(body))
		}
	}

	var pendingID string
	{
		st, body := doReq(t, ts.URL, "GET", "/inbox", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 inbox, got %d body=%s", st, string(body))
		}
		var reqs []struct {
			UUID  string `json:"uuid"`
			WebID string `json:"webId"`
		}
		_ = json.Unmarshal(body, &reqs)
		if len(reqs) != 1 {
			t.Fatalf("expected 1 pending request, got %d", len(reqs))
		}
		pendingID = reqs[0].UUID
	}

	// 2) grantAccess mueve el pedido a grants
	{
		st, body := doReq(t, ts.URL, "PUT", "/inbox/"+pendingID+"/grantAccess", token, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 grantAccess, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/inbox", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 inbox, got %d", st)
		}
		var reqs []json.RawMessage
		_ = json.Unmarshal(body, &reqs)
		if len(reqs) != 0 {
			t.Fatalf("expected empty inbox after grant, got %s", string(body))
		}
	}

	grants := listGrants(t, ts.URL, token)
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant after grantAccess, got %d", len(grants))
	}
	// El grant referencia el pedido que lo originó.
	if grants[0].Identifier != pendingID {
		t.Fatalf("expected identifier %s, got %s", pendingID, grants[0].Identifier)
	}
}

func TestHTTP_WalletFilesLifecycle(t *testing.T) {
	ts, token := newTestServer(t, false)

	// upload multipart con el field "file"
	{
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "card.ttl")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write([]byte("<a> <b> <c> ."))
		_ = mw.Close()

		req, err := http.NewRequest("PUT", ts.URL+"/wallet", &buf)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 upload, got %d", res.StatusCode)
		}
	}

	// list
	{
		st, body := doReq(t, ts.URL, "GET", "/wallet", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list files, got %d body=%s", st, string(body))
		}
		var list []struct {
			FileName   string `json:"fileName"`
			Identifier string `json:"identifier"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].Identifier != "card.ttl" {
			t.Fatalf("unexpected file list: %s", string(body))
		}
	}

	// raw
	{
		st, body := doReq(t, ts.URL, "GET", "/wallet/card.ttl?raw=true", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 raw, got %d", st)
		}
		if string(body) != "<a> <b> <c> ." {
			t.Fatalf("unexpected raw body: %q", string(body))
		}
	}

	// delete + 404 posterior
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/wallet/card.ttl", token, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/wallet/card.ttl", token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_PromptResourceLookup(t *testing.T) {
	ts, token := newTestServer(t, true)

	st, body := doReq(t, ts.URL, "GET", "/accessprompt/resource?webId=https%3A%2F%2Fid.example.org%2Fowner&type=IdentityCredential", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 prompt resource, got %d body=%s", st, string(body))
	}

	var res struct {
		ResourceName string `json:"resourceName"`
		OwnerName    string `json:"ownerName"`
	}
	_ = json.Unmarshal(body, &res)
	if res.ResourceName != "passport.jpg" || res.OwnerName != "Wallet Owner" {
		t.Fatalf("unexpected resource: %s", string(body))
	}

	// sin webId => 400
	st, _ = doReq(t, ts.URL, "GET", "/accessprompt/resource", token, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without webId, got %d", st)
	}
}

type grantResponse struct {
	UUID       string `json:"uuid"`
	Identifier string `json:"identifier"`
	WebID      string `json:"webId"`
}

func listGrants(t *testing.T, baseURL, token string) []grantResponse {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/accessgrants", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list grants, got %d body=%s", st, string(body))
	}
	var grants []grantResponse
	_ = json.Unmarshal(body, &grants)
	return grants
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
