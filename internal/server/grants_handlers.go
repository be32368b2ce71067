package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listGrantsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	grants, err := s.store.ListGrants(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grants)
}

func (s *Server) revokeGrantHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	uuid := chi.URLParam(r, "uuid")
	if err := s.store.DeleteGrant(r.Context(), uuid); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("grant revoked", map[string]any{"uuid": uuid})
	w.WriteHeader(http.StatusNoContent)
}

type revokeListRequest struct {
	UUIDs []string `json:"uuids"`
}

func (s *Server) revokeGrantListHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	var req revokeListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if len(req.UUIDs) == 0 {
		http.Error(w, "uuids required", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteGrants(r.Context(), req.UUIDs); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("grant list revoked", map[string]any{"count": len(req.UUIDs)})
	w.WriteHeader(http.StatusNoContent)
}
