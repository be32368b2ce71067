package navstack

import (
	"testing"

	"data-wallet/internal/ports/nav"
)

func TestStack_PushAndBack(t *testing.T) {
	s := New(nav.RouteHome, nil)

	s.Push(nav.RouteScan, nil)
	s.Push(nav.RouteDownload, nav.Params{"uri": "https://f.example/a.png"})

	if s.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", s.Depth())
	}
	cur := s.Current()
	if cur.Route != nav.RouteDownload || cur.Params["uri"] != "https://f.example/a.png" {
		t.Fatalf("unexpected current: %#v", cur)
	}

	s.Back()
	if s.Current().Route != nav.RouteScan {
		t.Fatalf("expected scan after back, got %s", s.Current().Route)
	}
}

func TestStack_ReplaceSwapsTop(t *testing.T) {
	s := New(nav.RouteHome, nil)
	s.Push(nav.RouteScan, nil)

	s.Replace(nav.RouteAccessPrompt, nav.Params{"webId": "https://a.example"})

	if s.Depth() != 2 {
		t.Fatalf("expected replace to keep depth, got %d", s.Depth())
	}
	if s.Current().Route != nav.RouteAccessPrompt {
		t.Fatalf("expected access prompt on top, got %s", s.Current().Route)
	}

	// Back saltea la pantalla reemplazada y cae en home.
	s.Back()
	if s.Current().Route != nav.RouteHome {
		t.Fatalf("expected home after back, got %s", s.Current().Route)
	}
}

func TestStack_BackAtRootStays(t *testing.T) {
	s := New(nav.RouteHome, nil)

	s.Back()
	if s.Depth() != 1 || s.Current().Route != nav.RouteHome {
		t.Fatalf("expected to stay at root, got depth=%d route=%s", s.Depth(), s.Current().Route)
	}
	if s.BackCalls() != 1 {
		t.Fatalf("expected back call counted, got %d", s.BackCalls())
	}
}
