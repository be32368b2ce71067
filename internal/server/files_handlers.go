package server

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"data-wallet/internal/domain/files"
	"data-wallet/internal/server/store"
)

const maxUploadBytes = 32 << 20 // 32MB

func (s *Server) listFilesHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	list, err := s.store.ListFiles(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// uploadFileHandler recibe form-data con el field "file". El
// identifier es el nombre del archivo: un PUT repetido reemplaza.
func (s *Server) uploadFileHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "read upload", http.StatusBadRequest)
		return
	}

	contentType := files.BareContentType(header.Header.Get("Content-Type"))
	stored := store.StoredFile{
		WalletFile: files.WalletFile{
			FileName:      header.Filename,
			Identifier:    header.Filename,
			IsRDFResource: files.IsRDFContentType(contentType),
		},
		ContentType: contentType,
		Data:        data,
	}

	if err := s.store.PutFile(r.Context(), stored); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("file uploaded", map[string]any{
		"fileName":    header.Filename,
		"contentType": contentType,
		"bytes":       len(data),
	})
	w.WriteHeader(http.StatusCreated)
}

// getFileHandler: con ?raw=true devuelve el contenido; sin raw, la
// metadata JSON.
func (s *Server) getFileHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	id := chi.URLParam(r, "fileID")
	f, err := s.store.GetFile(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if r.URL.Query().Get("raw") == "true" {
		if f.ContentType != "" {
			w.Header().Set("Content-Type", f.ContentType)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(f.Data)
		return
	}
	writeJSON(w, http.StatusOK, f.WalletFile)
}

func (s *Server) deleteFileHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	id := chi.URLParam(r, "fileID")
	if err := s.store.DeleteFile(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("file deleted", map[string]any{"fileID": id})
	w.WriteHeader(http.StatusNoContent)
}
