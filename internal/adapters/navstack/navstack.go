// Package navstack implementa nav.Navigator como un stack en
// memoria. Lo usan el CLI (para reportar transiciones) y los tests
// (para asertar el contrato push/replace/back).
package navstack

import (
	"sync"

	"data-wallet/internal/platform/logger"
	"data-wallet/internal/ports/nav"
)

// Entry es una pantalla en el stack con sus parámetros.
type Entry struct {
	Route  nav.Route
	Params nav.Params
}

type Stack struct {
	mu      sync.Mutex
	entries []Entry
	log     logger.Logger

	backCalls int
}

func New(initial nav.Route, log logger.Logger) *Stack {
	if log == nil {
		log = logger.Nop()
	}
	return &Stack{
		entries: []Entry{{Route: initial}},
		log:     log,
	}
}

func (s *Stack) Push(route nav.Route, params nav.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Route: route, Params: params})
	s.log.Debug("nav push", map[string]any{"route": string(route)})
}

func (s *Stack) Replace(route nav.Route, params nav.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		s.entries = []Entry{{Route: route, Params: params}}
	} else {
		s.entries[len(s.entries)-1] = Entry{Route: route, Params: params}
	}
	s.log.Debug("nav replace", map[string]any{"route": string(route)})
}

func (s *Stack) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backCalls++
	if len(s.entries) > 1 {
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.log.Debug("nav back", nil)
}

// Current devuelve la pantalla visible.
func (s *Stack) Current() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return Entry{}
	}
	return s.entries[len(s.entries)-1]
}

// Depth es el tamaño del stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// BackCalls cuenta los Back ejecutados (asserts de tests).
func (s *Stack) BackCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backCalls
}
