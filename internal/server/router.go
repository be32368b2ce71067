package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"data-wallet/internal/adapters/storage/memory"
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/server/store"
)

type Options struct {
	Store     store.Store // nil => memoria
	JWTSecret string
	TokenTTL  time.Duration
	Log       logger.Logger
}

// Server implementa el contrato wire del wallet para desarrollo y
// tests end-to-end del cliente.
type Server struct {
	store  store.Store
	tokens *Tokens
	log    logger.Logger
}

func NewRouter(opts Options) http.Handler {
	st := opts.Store
	if st == nil {
		st = memory.New()
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	secret := opts.JWTSecret
	if secret == "" {
		secret = "dev-only-secret"
	}

	s := &Server{
		store:  st,
		tokens: NewTokens(secret, opts.TokenTTL),
		log:    log,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(countRequests)
	r.Use(authContext(s.tokens, s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", s.loginHandler)

	r.Route("/accessgrants", func(gr chi.Router) {
		gr.Get("/", s.listGrantsHandler)
		gr.Put("/revoke", s.revokeGrantListHandler)
		gr.Put("/{uuid}/revoke", s.revokeGrantHandler)
	})

	r.Route("/inbox", func(ir chi.Router) {
		ir.Get("/", s.listRequestsHandler)
		ir.Put("/{uuid}/grantAccess", s.grantAccessHandler)
		ir.Put("/{uuid}/denyAccess", s.denyAccessHandler)
	})

	r.Route("/wallet", func(wr chi.Router) {
		wr.Get("/", s.listFilesHandler)
		wr.Put("/", s.uploadFileHandler)
		wr.Get("/{fileID}", s.getFileHandler)
		wr.Delete("/{fileID}", s.deleteFileHandler)
	})

	r.Route("/accessprompt", func(pr chi.Router) {
		pr.Post("/", s.createPromptHandler)
		pr.Get("/resource", s.promptResourceHandler)
	})

	return r
}
