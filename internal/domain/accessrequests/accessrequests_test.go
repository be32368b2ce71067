package accessrequests

import (
	"context"
	"errors"
	"testing"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/platform/querycache"
)

type testInboxAPI struct {
	requests  []Request
	updates   []string
	listCalls int
}

func (a *testInboxAPI) List(ctx context.Context) ([]Request, error) {
	a.listCalls++
	out := make([]Request, len(a.requests))
	copy(out, a.requests)
	return out, nil
}

func (a *testInboxAPI) Update(ctx context.Context, uuid string, action Action) error {
	a.updates = append(a.updates, uuid+":"+string(action))
	for i, r := range a.requests {
		if r.UUID == uuid {
			a.requests = append(a.requests[:i], a.requests[i+1:]...)
			return nil
		}
	}
	return errors.New("inbox: not found")
}

func TestService_Update_InvalidatesInbox(t *testing.T) {
	api := &testInboxAPI{requests: []Request{{UUID: "r1"}, {UUID: "r2"}}}
	cache := querycache.New(0)
	svc := NewService(api, cache, nil)
	ctx := context.Background()

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List error: %v", err)
	}

	if err := svc.Update(ctx, "r1", ActionDeny); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	reqs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List after deny error: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected refetch after update, got %d calls", api.listCalls)
	}
	if len(reqs) != 1 || reqs[0].UUID != "r2" {
		t.Fatalf("unexpected inbox: %#v", reqs)
	}
}

func TestService_Confirm_AlsoInvalidatesGrants(t *testing.T) {
	api := &testInboxAPI{requests: []Request{{UUID: "r1"}}}
	cache := querycache.New(0)
	svc := NewService(api, cache, nil)
	ctx := context.Background()

	// La lista de grants vive en el mismo cache; confirmar un pedido
	// crea un grant del lado del backend, así que también se tira.
	grantFetches := 0
	cache.Register(querycache.KeyAccessGrants, func(ctx context.Context) (any, error) {
		grantFetches++
		return []accessgrants.Grant{}, nil
	})
	if _, err := cache.Get(ctx, querycache.KeyAccessGrants); err != nil {
		t.Fatalf("prime grants cache: %v", err)
	}

	if err := svc.Update(ctx, "r1", ActionConfirm); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if _, err := cache.Get(ctx, querycache.KeyAccessGrants); err != nil {
		t.Fatalf("grants refetch error: %v", err)
	}
	if grantFetches != 2 {
		t.Fatalf("expected grants invalidated on confirm, got %d fetches", grantFetches)
	}
}

func TestService_Deny_LeavesGrantsCacheAlone(t *testing.T) {
	api := &testInboxAPI{requests: []Request{{UUID: "r1"}}}
	cache := querycache.New(0)
	svc := NewService(api, cache, nil)
	ctx := context.Background()

	grantFetches := 0
	cache.Register(querycache.KeyAccessGrants, func(ctx context.Context) (any, error) {
		grantFetches++
		return []accessgrants.Grant{}, nil
	})
	if _, err := cache.Get(ctx, querycache.KeyAccessGrants); err != nil {
		t.Fatalf("prime grants cache: %v", err)
	}

	if err := svc.Update(ctx, "r1", ActionDeny); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if _, err := cache.Get(ctx, querycache.KeyAccessGrants); err != nil {
		t.Fatalf("grants read error: %v", err)
	}
	if grantFetches != 1 {
		t.Fatalf("expected grants cache untouched on deny, got %d fetches", grantFetches)
	}
}

func TestService_Update_RejectsBadInput(t *testing.T) {
	svc := NewService(&testInboxAPI{}, querycache.New(0), nil)
	ctx := context.Background()

	if err := svc.Update(ctx, "  ", ActionConfirm); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty uuid, got %v", err)
	}
	if err := svc.Update(ctx, "r1", Action("MAYBE")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown action, got %v", err)
	}
}
