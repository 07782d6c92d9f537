package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/config"
)

// Server is the HTTP API server for text simplification.
type Server struct {
	router chi.Router
	comp   *config.Components
	log    *zap.Logger
	now    func() time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(comp *config.Components, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		comp: comp,
		log:  log,
		now:  time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/simplify", s.handleSimplify)
		r.Post("/simplify/batch", s.handleSimplifyBatch)
		r.Post("/simplify/upload", s.handleSimplifyUpload)

		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{runID}", s.handleGetRun)
		r.Get("/runs/{runID}/export", s.handleExportRun)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"producers": s.comp.ProducerNames(),
	})
}
