package accessgrants

import (
	"context"
	"errors"
	"testing"

	"data-wallet/internal/platform/querycache"
)

var errBackend = errors.New("backend: boom")

// testAPI simula el backend de grants: una lista viva, contadores de
// requests y fallas inyectables por operación.
type testAPI struct {
	grants []Grant

	listCalls   int
	failList    bool
	failRevoke  bool
	failRevList bool
}

func (a *testAPI) List(ctx context.Context) ([]Grant, error) {
	a.listCalls++
	if a.failList {
		return nil, errBackend
	}
	out := make([]Grant, len(a.grants))
	copy(out, a.grants)
	return out, nil
}

func (a *testAPI) Revoke(ctx context.Context, uuid string) error {
	if a.failRevoke {
		return errBackend
	}
	for i, g := range a.grants {
		if g.UUID == uuid {
			a.grants = append(a.grants[:i], a.grants[i+1:]...)
			return nil
		}
	}
	return errors.New("backend: not found")
}

func (a *testAPI) RevokeList(ctx context.Context, uuids []string) error {
	if a.failRevList {
		return errBackend
	}
	for _, u := range uuids {
		if err := a.Revoke(context.Background(), u); err != nil {
			return err
		}
	}
	return nil
}

func newTestService(grants ...Grant) (*Service, *testAPI) {
	api := &testAPI{grants: grants}
	return NewService(api, querycache.New(0), nil), api
}

func TestService_Groups_CachesUntilInvalidated(t *testing.T) {
	svc, api := newTestService(
		grantFor("g1", "https://a.example"),
		grantFor("g2", "https://b.example"),
	)
	ctx := context.Background()

	if _, err := svc.Groups(ctx); err != nil {
		t.Fatalf("Groups error: %v", err)
	}
	if _, err := svc.Groups(ctx); err != nil {
		t.Fatalf("Groups #2 error: %v", err)
	}
	if api.listCalls != 1 {
		t.Fatalf("expected 1 fetch, got %d", api.listCalls)
	}

	if _, err := svc.RefetchGroups(ctx); err != nil {
		t.Fatalf("RefetchGroups error: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected refetch to hit backend, got %d calls", api.listCalls)
	}
}

func TestService_RevokeGrant_InvalidatesOnSuccess(t *testing.T) {
	svc, api := newTestService(
		grantFor("g1", "https://a.example"),
		grantFor("g2", "https://a.example"),
	)
	ctx := context.Background()

	if _, err := svc.Groups(ctx); err != nil {
		t.Fatalf("Groups error: %v", err)
	}

	if err := svc.RevokeGrant(ctx, "g1"); err != nil {
		t.Fatalf("RevokeGrant error: %v", err)
	}

	groups, err := svc.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups after revoke error: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected invalidation to force a refetch, got %d calls", api.listCalls)
	}
	if len(groups) != 1 || len(groups[0].Items) != 1 || groups[0].Items[0].UUID != "g2" {
		t.Fatalf("unexpected groups after revoke: %#v", groups)
	}
}

func TestService_RevokeGrant_FailureKeepsCache(t *testing.T) {
	svc, api := newTestService(grantFor("g1", "https://a.example"))
	ctx := context.Background()

	if _, err := svc.Groups(ctx); err != nil {
		t.Fatalf("Groups error: %v", err)
	}

	api.failRevoke = true
	err := svc.RevokeGrant(ctx, "g1")
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}

	// Sin update optimista: la lista cacheada sigue intacta, sin
	// refetch ni remoción local.
	groups, err := svc.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups after failed revoke error: %v", err)
	}
	if api.listCalls != 1 {
		t.Fatalf("expected no refetch after failure, got %d calls", api.listCalls)
	}
	if len(groups) != 1 || groups[0].Items[0].UUID != "g1" {
		t.Fatalf("expected cached data untouched, got %#v", groups)
	}
	if svc.Updating() {
		t.Fatalf("expected mutation closed after failure")
	}
}

func TestService_RevokeGrant_EmptyUUID(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.RevokeGrant(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_RevokeGroup_SingleRequestWithAllUUIDs(t *testing.T) {
	svc, api := newTestService(
		grantFor("g1", "https://a.example"),
		grantFor("g2", "https://a.example"),
		grantFor("g3", "https://b.example"),
	)
	ctx := context.Background()

	groups, err := svc.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups error: %v", err)
	}

	if err := svc.RevokeGroup(ctx, groups[0]); err != nil {
		t.Fatalf("RevokeGroup error: %v", err)
	}

	fresh, err := svc.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups after group revoke error: %v", err)
	}
	if len(fresh) != 1 || fresh[0].WebID != "https://b.example" {
		t.Fatalf("expected only b.example left, got %#v", fresh)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected one refetch after invalidation, got %d calls", api.listCalls)
	}
}

func TestService_RevokeGroup_EmptyGroup(t *testing.T) {
	svc, _ := newTestService()
	err := svc.RevokeGroup(context.Background(), Group{WebID: "https://a.example"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
