package scan

import (
	"errors"
	"testing"

	"data-wallet/internal/ports/nav"
)

type navCall struct {
	op     string
	route  nav.Route
	params nav.Params
}

type testNav struct {
	calls []navCall
}

func (n *testNav) Push(route nav.Route, params nav.Params) {
	n.calls = append(n.calls, navCall{op: "push", route: route, params: params})
}

func (n *testNav) Replace(route nav.Route, params nav.Params) {
	n.calls = append(n.calls, navCall{op: "replace", route: route, params: params})
}

func (n *testNav) Back() {
	n.calls = append(n.calls, navCall{op: "back"})
}

func TestDispatcher_AccessPrompt_ReplacesScanner(t *testing.T) {
	navi := &testNav{}
	d := NewDispatcher(navi, nil)

	err := d.HandleScan(`{"webId":"https://alice.example","client":"https://app.example","type":"medical"}`)
	if err != nil {
		t.Fatalf("HandleScan returned error: %v", err)
	}

	if len(navi.calls) != 1 {
		t.Fatalf("expected 1 nav call, got %d", len(navi.calls))
	}
	call := navi.calls[0]
	if call.op != "replace" || call.route != nav.RouteAccessPrompt {
		t.Fatalf("expected replace to access prompt, got %#v", call)
	}
	if call.params["webId"] != "https://alice.example" || call.params["client"] != "https://app.example" || call.params["type"] != "medical" {
		t.Fatalf("unexpected params: %#v", call.params)
	}
}

func TestDispatcher_Download_PushesOnTop(t *testing.T) {
	navi := &testNav{}
	d := NewDispatcher(navi, nil)

	err := d.HandleScan(`{"uri":"https://files.example/doc.ttl","contentType":"text/turtle"}`)
	if err != nil {
		t.Fatalf("HandleScan returned error: %v", err)
	}

	if len(navi.calls) != 1 {
		t.Fatalf("expected 1 nav call, got %d", len(navi.calls))
	}
	call := navi.calls[0]
	if call.op != "push" || call.route != nav.RouteDownload {
		t.Fatalf("expected push to download, got %#v", call)
	}
	if call.params["uri"] != "https://files.example/doc.ttl" || call.params["contentType"] != "text/turtle" {
		t.Fatalf("unexpected params: %#v", call.params)
	}
}

func TestDispatcher_Unrecognized_GoesBack(t *testing.T) {
	navi := &testNav{}
	d := NewDispatcher(navi, nil)

	err := d.HandleScan("garbage")
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}

	if len(navi.calls) != 1 || navi.calls[0].op != "back" {
		t.Fatalf("expected a single back call, got %#v", navi.calls)
	}
}
