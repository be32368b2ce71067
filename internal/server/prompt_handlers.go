package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessprompt"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/domain/files"
)

type createPromptRequest struct {
	Resource string `json:"resource"`
	Client   string `json:"client"`
}

// createPromptHandler convierte un access prompt en un pedido
// pendiente del inbox, para que el dueño lo confirme o deniegue.
func (s *Server) createPromptHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	var req createPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Resource) == "" || strings.TrimSpace(req.Client) == "" {
		http.Error(w, "resource and client required", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	pending := accessrequests.Request{
		UUID:           uuid.NewString(),
		WebID:          req.Client,
		OwnerName:      req.Client,
		Resource:       req.Resource,
		ResourceName:   files.FormatResourceName(req.Resource, false, req.Resource),
		IssuedDate:     now,
		ExpirationDate: now.AddDate(0, 3, 0),
		Modes:          []accessgrants.Mode{accessgrants.ModeRead},
	}

	if err := s.store.CreateRequest(r.Context(), pending); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("access prompt filed", map[string]any{
		"client":   req.Client,
		"resource": req.Resource,
	})
	w.WriteHeader(http.StatusCreated)
}

// promptResourceHandler resuelve qué recurso ofrece un (webId, type).
func (s *Server) promptResourceHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	webID := strings.TrimSpace(r.URL.Query().Get("webId"))
	resourceType := strings.TrimSpace(r.URL.Query().Get("type"))
	if webID == "" {
		http.Error(w, "webId required", http.StatusBadRequest)
		return
	}

	p, err := s.store.FindPromptResource(r.Context(), webID, resourceType)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, accessprompt.Resource{
		WebID:        p.WebID,
		Resource:     p.Resource,
		ResourceName: p.ResourceName,
		Logo:         p.Logo,
		OwnerName:    p.OwnerName,
	})
}
