package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"data-wallet/internal/domain/accessgrants"
)

func (s *Server) listRequestsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	reqs, err := s.store.ListRequests(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

// grantAccessHandler confirma un pedido del inbox: el pedido se va
// del inbox y aparece como grant.
func (s *Server) grantAccessHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	id := chi.URLParam(r, "uuid")
	req, err := s.store.GetRequest(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	grant := accessgrants.Grant{
		UUID:           uuid.NewString(),
		Identifier:     req.UUID,
		WebID:          req.WebID,
		Logo:           req.Logo,
		OwnerName:      req.OwnerName,
		Resource:       req.Resource,
		ResourceName:   req.ResourceName,
		ForPurpose:     req.ForPurpose,
		ExpirationDate: req.ExpirationDate,
		IssuedDate:     req.IssuedDate,
		IsRDFResource:  req.IsRDFResource,
		Modes:          req.Modes,
	}

	if err := s.store.CreateGrant(r.Context(), grant); err != nil {
		writeStoreError(w, err)
		return
	}
	if err := s.store.DeleteRequest(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("access request granted", map[string]any{
		"request": id,
		"grant":   grant.UUID,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) denyAccessHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	id := chi.URLParam(r, "uuid")
	if err := s.store.DeleteRequest(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("access request denied", map[string]any{"request": id})
	w.WriteHeader(http.StatusNoContent)
}
